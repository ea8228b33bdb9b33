// Package service orchestrates the monitor's refresh pipeline on top of the
// core contracts.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gs1ops/edimon/internal/core"
	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/domain/monitor"
	apperrors "github.com/gs1ops/edimon/internal/errors"
	"github.com/gs1ops/edimon/internal/util"
)

// MonitorServiceOptions groups dependencies for MonitorService.
type MonitorServiceOptions struct {
	Store   core.JobStore
	Filters core.FilterStateStore
	// Cache is optional; nil disables the page-result cache.
	Cache core.CacheRepository

	// DefaultPageSize is used when a request does not specify a page size.
	DefaultPageSize int
	// WindowDays is the trailing window length for the default query window.
	WindowDays int
	// QueryTimeout bounds one refresh's store queries. Zero disables the bound.
	QueryTimeout time.Duration
	// CacheTTL bounds cached page results. Zero disables caching even when a
	// cache is configured.
	CacheTTL time.Duration

	Logger *slog.Logger
}

// MonitorService is the entry point for the publication monitor: it resolves
// pagination, plans the store queries, classifies the rows, and applies the
// session's view filter. One refresh is a single synchronous pipeline; the
// count and page queries are the only suspension points.
type MonitorService struct {
	store   core.JobStore
	filters core.FilterStateStore
	cache   core.CacheRepository

	defaultPageSize int
	windowDays      int
	queryTimeout    time.Duration
	cacheTTL        time.Duration

	logger *slog.Logger
}

// NewMonitorService constructs a new MonitorService.
func NewMonitorService(opts MonitorServiceOptions) *MonitorService {
	if opts.DefaultPageSize == 0 {
		opts.DefaultPageSize = 100
	}
	if opts.WindowDays == 0 {
		opts.WindowDays = monitor.DefaultWindowDays
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &MonitorService{
		store:           opts.Store,
		filters:         opts.Filters,
		cache:           opts.Cache,
		defaultPageSize: opts.DefaultPageSize,
		windowDays:      opts.WindowDays,
		queryTimeout:    opts.QueryTimeout,
		cacheTTL:        opts.CacheTTL,
		logger:          opts.Logger,
	}
}

// defaultQuery fills the unset fields of a page query: the trailing default
// window, the configured page size, and page 1.
func (s *MonitorService) defaultQuery(q model.PageQuery) model.PageQuery {
	if q.WindowStart.IsZero() && q.WindowEnd.IsZero() {
		q.WindowStart, q.WindowEnd = monitor.DefaultWindow(time.Now(), s.windowDays)
	}
	if q.PageSize == 0 {
		q.PageSize = s.defaultPageSize
	}
	if q.Page == 0 {
		q.Page = 1
	}
	return q
}

// GetPage answers one page request: plan the count and page queries, run
// them concurrently, and assemble the classified result. Both queries share
// one planner call, so they always describe the same logical window and
// platform filter. If either fails the whole refresh fails; no partial
// result is ever returned.
func (s *MonitorService) GetPage(ctx context.Context, q model.PageQuery) (*model.PageResult, error) {
	q = s.defaultQuery(q)
	countSpec, pageSpec, err := monitor.Plan(q)
	if err != nil {
		return nil, err
	}

	if res := s.cachedResult(ctx, q); res != nil {
		return res, nil
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	var (
		total int
		rows  []model.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var countErr error
		total, countErr = s.store.Count(gctx, countSpec)
		return countErr
	})
	g.Go(func() error {
		var pageErr error
		rows, pageErr = s.store.Page(gctx, pageSpec)
		return pageErr
	})
	if waitErr := g.Wait(); waitErr != nil {
		return nil, apperrors.MapDBError(waitErr)
	}

	res := monitor.Assemble(rows, total)
	s.storeCachedResult(ctx, q, &res)
	return &res, nil
}

// View runs the full refresh pipeline for one session: page result, session
// filter application, and navigation affordances. When the query does not
// name a page, the session's current page is used.
func (s *MonitorService) View(ctx context.Context, sessionID string, q model.PageQuery) (*model.MonitorView, error) {
	st, err := s.filters.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if q.Page == 0 {
		q.Page = st.CurrentPage
	}
	q = s.defaultQuery(q)
	return s.viewWithState(ctx, sessionID, st, q)
}

// SetFilter moves the session's filter state machine to the requested toggle
// and returns the settled state.
func (s *MonitorService) SetFilter(ctx context.Context, sessionID string, toggle model.FilterToggle) (model.ViewFilterState, error) {
	if !toggle.Valid() {
		return model.ViewFilterState{}, apperrors.Configurationf("unknown filter toggle %q", toggle)
	}
	st, err := s.filters.Get(ctx, sessionID)
	if err != nil {
		return model.ViewFilterState{}, err
	}
	st.SetFilter(toggle)
	if saveErr := s.filters.Save(ctx, sessionID, st); saveErr != nil {
		return model.ViewFilterState{}, saveErr
	}
	return st, nil
}

// ActiveFilter reports the session's currently active filter toggle.
func (s *MonitorService) ActiveFilter(ctx context.Context, sessionID string) (model.FilterToggle, error) {
	st, err := s.filters.Get(ctx, sessionID)
	if err != nil {
		return model.FilterNone, err
	}
	return st.Active(), nil
}

// GoToPage validates a direct page jump against the current total and, when
// valid, renders that page. An out-of-range jump fails with an invalid-page
// error and leaves the session's current page untouched.
func (s *MonitorService) GoToPage(ctx context.Context, sessionID string, n int, q model.PageQuery) (*model.MonitorView, error) {
	st, err := s.filters.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q = s.defaultQuery(q)

	total, err := s.count(ctx, q)
	if err != nil {
		return nil, err
	}
	if jumpErr := monitor.ValidateJump(n, total, q.PageSize); jumpErr != nil {
		return nil, jumpErr
	}

	q.Page = n
	return s.viewWithState(ctx, sessionID, st, q)
}

// NextPage advances the session's page when the next page exists, then
// renders the (possibly unchanged) current page. The page counter never
// leaves [1, lastPage] through the prev/next actions.
func (s *MonitorService) NextPage(ctx context.Context, sessionID string, q model.PageQuery) (*model.MonitorView, error) {
	return s.step(ctx, sessionID, q, +1)
}

// PreviousPage is the inverse of NextPage.
func (s *MonitorService) PreviousPage(ctx context.Context, sessionID string, q model.PageQuery) (*model.MonitorView, error) {
	return s.step(ctx, sessionID, q, -1)
}

// Parameters lazily fetches and pretty-prints one job's raw XML parameter
// blob. It is the drill-down path, deliberately outside the paginated core.
func (s *MonitorService) Parameters(ctx context.Context, jobID int64) (string, error) {
	xmlText, err := s.store.FetchParametersXML(ctx, jobID)
	if err != nil {
		return "", err
	}
	if xmlText == nil {
		return "", nil
	}
	return util.PrettyXML(*xmlText), nil
}

func (s *MonitorService) step(ctx context.Context, sessionID string, q model.PageQuery, delta int) (*model.MonitorView, error) {
	st, err := s.filters.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q = s.defaultQuery(q)

	total, err := s.count(ctx, q)
	if err != nil {
		return nil, err
	}
	nav := monitor.ResolvePage(st.CurrentPage, total, q.PageSize)
	switch {
	case delta > 0 && nav.CanGoNext:
		st.CurrentPage++
	case delta < 0 && nav.CanGoPrevious:
		st.CurrentPage--
	}

	q.Page = st.CurrentPage
	return s.viewWithState(ctx, sessionID, st, q)
}

// viewWithState renders one page under the given session state and persists
// the viewed page number.
func (s *MonitorService) viewWithState(ctx context.Context, sessionID string, st model.ViewFilterState, q model.PageQuery) (*model.MonitorView, error) {
	res, err := s.GetPage(ctx, q)
	if err != nil {
		return nil, err
	}

	st.CurrentPage = q.Page
	if saveErr := s.filters.Save(ctx, sessionID, st); saveErr != nil {
		return nil, saveErr
	}

	platform := "any"
	if q.Platform != nil {
		platform = *q.Platform
	}
	return &model.MonitorView{
		Result:       *res,
		Display:      st.Apply(res.Rows),
		Nav:          monitor.ResolvePage(q.Page, res.TotalMatchingRows, q.PageSize),
		ActiveFilter: st.Active(),
		Platform:     platform,
	}, nil
}

// count runs the count query alone, for navigation actions that only need
// the total.
func (s *MonitorService) count(ctx context.Context, q model.PageQuery) (int, error) {
	q.Page = 1
	countSpec, _, err := monitor.Plan(q)
	if err != nil {
		return 0, err
	}
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}
	total, err := s.store.Count(ctx, countSpec)
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return total, nil
}

// cacheKey is exact-match over every query dimension; the cache is never
// consulted across different windows or platform filters.
func cacheKey(q model.PageQuery) string {
	platform := "*"
	if q.Platform != nil {
		platform = *q.Platform
	}
	return fmt.Sprintf("monitor:page:%d:%d:%s:%d:%d",
		q.WindowStart.Unix(), q.WindowEnd.Unix(), platform, q.Page, q.PageSize)
}

func (s *MonitorService) cachedResult(ctx context.Context, q model.PageQuery) *model.PageResult {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	data, err := s.cache.Get(ctx, cacheKey(q))
	if err != nil {
		s.logger.WarnContext(ctx, "page cache read failed", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var res model.PageResult
	if unmarshalErr := json.Unmarshal(data, &res); unmarshalErr != nil {
		return nil
	}
	return &res
}

func (s *MonitorService) storeCachedResult(ctx context.Context, q model.PageQuery, res *model.PageResult) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if setErr := s.cache.Set(ctx, cacheKey(q), data, s.cacheTTL); setErr != nil {
		s.logger.WarnContext(ctx, "page cache write failed", "error", setErr)
	}
}
