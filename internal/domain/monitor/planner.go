// Package monitor holds the pure query-planning, pagination, and assembly
// logic behind the publication monitor view.
package monitor

import (
	"time"

	"github.com/gs1ops/edimon/internal/domain/model"
	apperrors "github.com/gs1ops/edimon/internal/errors"
)

// DefaultWindowDays is the trailing window length used when the caller does
// not override the time window.
const DefaultWindowDays = 30

// QuerySpec is the declarative description of one store query. The planner
// produces two of these per page request (count + page); the data layer
// renders them to SQL. A nil Platform means the platform predicate is omitted
// entirely, which is different from filtering on an empty value.
type QuerySpec struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Platform    *string
	Offset      int
	Limit       int
	CountOnly   bool
}

// ValidPageSize reports whether n is one of the supported page sizes.
func ValidPageSize(n int) bool {
	switch n {
	case 50, 100, 200, 500:
		return true
	}
	return false
}

// DefaultWindow returns the default half-open query window: the trailing
// `days` days through tomorrow. Ending at tomorrow's midnight keeps today's
// rows inside the half-open interval [start, end).
func DefaultWindow(now time.Time, days int) (time.Time, time.Time) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, 1)
}

// Plan validates a page query and produces the count and page query specs
// needed to answer it. Both specs share the same window and platform values
// by construction, so the count and the page rows always describe the same
// logical result set.
//
// Ordering is strictly descending by created_at; equal timestamps tie-break
// by id descending so repeated calls never duplicate or drop rows across
// page boundaries.
func Plan(q model.PageQuery) (countSpec, pageSpec QuerySpec, err error) {
	if !ValidPageSize(q.PageSize) {
		return QuerySpec{}, QuerySpec{}, apperrors.Configurationf("unsupported page size %d", q.PageSize)
	}
	if !q.WindowEnd.After(q.WindowStart) {
		return QuerySpec{}, QuerySpec{}, apperrors.Configurationf(
			"window end %s must be after window start %s",
			q.WindowEnd.Format(time.RFC3339), q.WindowStart.Format(time.RFC3339))
	}
	if q.Page < 1 {
		return QuerySpec{}, QuerySpec{}, apperrors.InvalidPagef("page %d is out of range; pages start at 1", q.Page)
	}

	countSpec = QuerySpec{
		WindowStart: q.WindowStart,
		WindowEnd:   q.WindowEnd,
		Platform:    q.Platform,
		CountOnly:   true,
	}
	pageSpec = QuerySpec{
		WindowStart: q.WindowStart,
		WindowEnd:   q.WindowEnd,
		Platform:    q.Platform,
		Offset:      (q.Page - 1) * q.PageSize,
		Limit:       q.PageSize,
	}
	return countSpec, pageSpec, nil
}
