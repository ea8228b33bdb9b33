package monitor

import (
	"github.com/gs1ops/edimon/internal/domain/classify"
	"github.com/gs1ops/edimon/internal/domain/model"
)

// Assemble combines the raw page rows and the total count into a classified
// PageResult. Input order is preserved: the store already returns rows in
// descending created_at order and the assembler must not re-sort.
//
// The critical/ok counts cover exactly the rows present on this page, and
// each row is classified once, by the same classifier that drives filtering,
// so summary counts and row classification can never diverge.
func Assemble(rows []model.Job, totalCount int) model.PageResult {
	out := model.PageResult{
		TotalMatchingRows: totalCount,
		Rows:              make([]model.ClassifiedJob, 0, len(rows)),
	}
	for _, j := range rows {
		cj := classify.Job(j)
		if cj.Classification == model.ClassificationCritical {
			out.CriticalCount++
		} else {
			out.OkCount++
		}
		out.Rows = append(out.Rows, cj)
	}
	return out
}
