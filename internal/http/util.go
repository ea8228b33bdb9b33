package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/domain/monitor"
	apperrors "github.com/gs1ops/edimon/internal/errors"
)

// PlatformAny is the query value that disables the platform filter.
const PlatformAny = "any"

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// parseTimeQuery parses a query param as either a date (2006-01-02) or an
// RFC 3339 timestamp. A missing param yields the zero time.
func parseTimeQuery(r *http.Request, key string) (time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, apperrors.Configurationf("invalid %s value %q", key, v)
	}
	return t, nil
}

// ParsePageQuery builds a page query from the request's query string.
// The window can be given explicitly (from/to, together) or as a trailing
// window_days; defaultPlatform applies when the platform param is absent, and
// the explicit value "any" disables the platform filter regardless of the
// default. Unset window, page, and size fields are left zero for the service
// to default.
func ParsePageQuery(r *http.Request, defaultPlatform string) (model.PageQuery, error) {
	var q model.PageQuery
	var err error

	if q.WindowStart, err = parseTimeQuery(r, "from"); err != nil {
		return model.PageQuery{}, err
	}
	if q.WindowEnd, err = parseTimeQuery(r, "to"); err != nil {
		return model.PageQuery{}, err
	}
	// A one-sided window is ambiguous; require both or neither.
	if q.WindowStart.IsZero() != q.WindowEnd.IsZero() {
		return model.PageQuery{}, apperrors.Configuration("from and to must be given together")
	}

	if days := parseIntQuery(r, "window_days", 0); days != 0 {
		if !q.WindowStart.IsZero() {
			return model.PageQuery{}, apperrors.Configuration("window_days cannot be combined with from/to")
		}
		if days < 0 {
			return model.PageQuery{}, apperrors.Configurationf("invalid window_days value %d", days)
		}
		q.WindowStart, q.WindowEnd = monitor.DefaultWindow(time.Now(), days)
	}

	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = defaultPlatform
	}
	if platform != "" && platform != PlatformAny {
		q.Platform = &platform
	}

	q.Page = parseIntQuery(r, "page", 0)
	q.PageSize = parseIntQuery(r, "page_size", 0)
	return q, nil
}
