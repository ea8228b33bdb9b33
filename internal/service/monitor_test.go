package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/domain/monitor"
	apperrors "github.com/gs1ops/edimon/internal/errors"
	"github.com/gs1ops/edimon/internal/mocks"
)

func strPtr(s string) *string { return &s }

const testSession = "6f1c8f0a-8d3a-4a61-9d32-0a4c9a4dd001"

func testWindow() (time.Time, time.Time) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 25)
}

func testQuery() model.PageQuery {
	start, end := testWindow()
	return model.PageQuery{WindowStart: start, WindowEnd: end, Page: 1, PageSize: 50}
}

func newTestService(store *mocks.MockJobStore, filters *mocks.MockFilterStateStore) *MonitorService {
	return NewMonitorService(MonitorServiceOptions{
		Store:           store,
		Filters:         filters,
		DefaultPageSize: 50,
	})
}

func TestGetPage_AssemblesClassifiedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	svc := newTestService(store, mocks.NewMockFilterStateStore(ctrl))

	rows := []model.Job{
		{ID: 12, Platform: model.PlatformEDI},
		{ID: 11, Platform: model.PlatformAltaEmpresa, RejectionReason: strPtr("Error al dar de alta la empresa")},
	}
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(101, nil)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(rows, nil)

	res, err := svc.GetPage(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, 101, res.TotalMatchingRows)
	assert.Equal(t, 1, res.CriticalCount)
	assert.Equal(t, 1, res.OkCount)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, int64(12), res.Rows[0].ID)
	assert.Equal(t, model.ClassificationCritical, res.Rows[1].Classification)
}

func TestGetPage_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	svc := newTestService(store, mocks.NewMockFilterStateStore(ctrl))

	rows := []model.Job{{ID: 5, Platform: model.PlatformEDI}}
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).Times(2)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(rows, nil).Times(2)

	first, err := svc.GetPage(context.Background(), testQuery())
	require.NoError(t, err)
	second, err := svc.GetPage(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetPage_StoreErrorMeansNoPartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	svc := newTestService(store, mocks.NewMockFilterStateStore(ctrl))

	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	store.EXPECT().Page(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Internal("page jobs failed")).AnyTimes()

	res, err := svc.GetPage(context.Background(), testQuery())
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestGetPage_InvalidQueryNeverHitsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	svc := newTestService(store, mocks.NewMockFilterStateStore(ctrl))

	q := testQuery()
	q.PageSize = 75

	_, err := svc.GetPage(context.Background(), q)
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestGetPage_CacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewMonitorService(MonitorServiceOptions{
		Store:           store,
		Filters:         mocks.NewMockFilterStateStore(ctrl),
		Cache:           cache,
		DefaultPageSize: 50,
		CacheTTL:        time.Minute,
	})

	cached := model.PageResult{TotalMatchingRows: 7, Rows: []model.ClassifiedJob{}, OkCount: 0}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(data, nil)

	res, err := svc.GetPage(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Equal(t, 7, res.TotalMatchingRows)
}

func TestGetPage_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewMonitorService(MonitorServiceOptions{
		Store:           store,
		Filters:         mocks.NewMockFilterStateStore(ctrl),
		Cache:           cache,
		DefaultPageSize: 50,
		CacheTTL:        time.Minute,
	})

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	_, err := svc.GetPage(context.Background(), testQuery())
	require.NoError(t, err)
}

func TestView_AppliesSessionFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	st := model.NewViewFilterState()
	st.SetFilter(model.FilterCritical)
	filters.EXPECT().Get(gomock.Any(), testSession).Return(st, nil)
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).Return(nil)

	rows := []model.Job{
		{ID: 3, Platform: model.PlatformEDI},
		{ID: 2, Platform: model.PlatformEDI, RejectionReason: strPtr("No existe el usuario, no se creo el usuario")},
	}
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(rows, nil)

	view, err := svc.View(context.Background(), testSession, testQuery())
	require.NoError(t, err)

	// The unfiltered result keeps both rows; the display subset is filtered.
	assert.Len(t, view.Result.Rows, 2)
	require.Len(t, view.Display, 1)
	assert.Equal(t, int64(2), view.Display[0].ID)
	assert.Equal(t, model.FilterCritical, view.ActiveFilter)
	assert.Equal(t, 1, view.Nav.EffectivePage)
}

func TestView_UsesSessionPageWhenUnspecified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	st := model.NewViewFilterState()
	st.CurrentPage = 2
	filters.EXPECT().Get(gomock.Any(), testSession).Return(st, nil)
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).Return(nil)

	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(101, nil)
	store.EXPECT().Page(gomock.Any(), gomock.Cond(func(spec monitor.QuerySpec) bool {
		return spec.Offset == 50 && spec.Limit == 50
	})).Return(nil, nil)

	q := testQuery()
	q.Page = 0
	view, err := svc.View(context.Background(), testSession, q)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Nav.EffectivePage)
}

func TestGoToPage_RejectsOutOfRangeWithoutMoving(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	filters.EXPECT().Get(gomock.Any(), testSession).Return(model.NewViewFilterState(), nil)
	// 101 rows at size 50: pages 1..3, so 4 is out of range.
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(101, nil)
	// No Save expectation: the session page must not move.

	view, err := svc.GoToPage(context.Background(), testSession, 4, testQuery())
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidPage(err))
	assert.Nil(t, view)
}

func TestGoToPage_ValidJump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	filters.EXPECT().Get(gomock.Any(), testSession).Return(model.NewViewFilterState(), nil)
	// One count for validation, one for the rendered page.
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(101, nil).Times(2)
	store.EXPECT().Page(gomock.Any(), gomock.Cond(func(spec monitor.QuerySpec) bool {
		return spec.Offset == 100
	})).Return(nil, nil)
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Cond(func(st model.ViewFilterState) bool {
		return st.CurrentPage == 3
	})).Return(nil)

	view, err := svc.GoToPage(context.Background(), testSession, 3, testQuery())
	require.NoError(t, err)
	assert.Equal(t, 3, view.Nav.EffectivePage)
	assert.False(t, view.Nav.CanGoNext)
}

func TestNextPage_AdvancesUntilLastPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	st := model.NewViewFilterState()
	st.CurrentPage = 3
	filters.EXPECT().Get(gomock.Any(), testSession).Return(st, nil)
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(101, nil).Times(2)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(nil, nil)
	// Already on the last page: the refresh succeeds but the page stays.
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Cond(func(got model.ViewFilterState) bool {
		return got.CurrentPage == 3
	})).Return(nil)

	view, err := svc.NextPage(context.Background(), testSession, testQuery())
	require.NoError(t, err)
	assert.Equal(t, 3, view.Nav.EffectivePage)
}

func TestPreviousPage_StopsAtPageOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(store, filters)

	filters.EXPECT().Get(gomock.Any(), testSession).Return(model.NewViewFilterState(), nil)
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(10, nil).Times(2)
	store.EXPECT().Page(gomock.Any(), gomock.Any()).Return(nil, nil)
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Cond(func(got model.ViewFilterState) bool {
		return got.CurrentPage == 1
	})).Return(nil)

	view, err := svc.PreviousPage(context.Background(), testSession, testQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, view.Nav.EffectivePage)
}

func TestSetFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := mocks.NewMockFilterStateStore(ctrl)
	svc := newTestService(mocks.NewMockJobStore(ctrl), filters)

	filters.EXPECT().Get(gomock.Any(), testSession).Return(model.NewViewFilterState(), nil)
	filters.EXPECT().Save(gomock.Any(), testSession, gomock.Cond(func(st model.ViewFilterState) bool {
		return st.Active() == model.FilterOk
	})).Return(nil)

	st, err := svc.SetFilter(context.Background(), testSession, model.FilterOk)
	require.NoError(t, err)
	assert.Equal(t, model.FilterOk, st.Active())
}

func TestSetFilter_RejectsUnknownToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestService(mocks.NewMockJobStore(ctrl), mocks.NewMockFilterStateStore(ctrl))

	_, err := svc.SetFilter(context.Background(), testSession, model.FilterToggle("both"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockJobStore(ctrl)
	svc := newTestService(store, mocks.NewMockFilterStateStore(ctrl))

	t.Run("pretty prints the stored xml", func(t *testing.T) {
		raw := `<params><empresa cif="B123"/></params>`
		store.EXPECT().FetchParametersXML(gomock.Any(), int64(42)).Return(&raw, nil)

		got, err := svc.Parameters(context.Background(), 42)
		require.NoError(t, err)
		assert.Contains(t, got, "<params>")
		assert.Contains(t, got, "\n")
	})

	t.Run("job without parameters yields empty string", func(t *testing.T) {
		store.EXPECT().FetchParametersXML(gomock.Any(), int64(43)).Return(nil, nil)

		got, err := svc.Parameters(context.Background(), 43)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing job propagates not found", func(t *testing.T) {
		store.EXPECT().FetchParametersXML(gomock.Any(), int64(44)).
			Return(nil, apperrors.NotFoundf("job 44 not found"))

		_, err := svc.Parameters(context.Background(), 44)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
