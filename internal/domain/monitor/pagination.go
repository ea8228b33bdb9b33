package monitor

import (
	"github.com/gs1ops/edimon/internal/domain/model"
	apperrors "github.com/gs1ops/edimon/internal/errors"
)

// ResolvePage computes navigation affordances for a requested page against
// the total matching row count. The requested page is taken as-is: an
// out-of-range page renders empty rather than being silently clamped, but
// CanGoNext/CanGoPrevious never let the prev/next buttons leave [1, lastPage].
// pageSize must be positive; the planner rejects anything else upstream.
func ResolvePage(requested, totalRows, pageSize int) model.PageNav {
	offset := (requested - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return model.PageNav{
		EffectivePage: requested,
		Offset:        offset,
		CanGoPrevious: requested > 1,
		CanGoNext:     offset+pageSize < totalRows,
		LastPage:      LastPage(totalRows, pageSize),
	}
}

// LastPage returns the 1-based number of the last page, never below 1 even
// for an empty result set.
func LastPage(totalRows, pageSize int) int {
	last := (totalRows + pageSize - 1) / pageSize
	if last < 1 {
		last = 1
	}
	return last
}

// ValidateJump checks a direct "go to page n" action. Unlike prev/next, a
// jump is rejected outright when n leaves [1, lastPage]; the previously
// displayed page stays on screen.
func ValidateJump(n, totalRows, pageSize int) error {
	last := LastPage(totalRows, pageSize)
	if n < 1 || n > last {
		return apperrors.InvalidPagef("page %d is out of range [1, %d]", n, last)
	}
	return nil
}
