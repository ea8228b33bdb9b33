package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewViewFilterState(t *testing.T) {
	st := NewViewFilterState()

	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, FilterNone, st.Active())
}

func TestSetFilter_LastChangeWins(t *testing.T) {
	st := NewViewFilterState()

	st.SetFilter(FilterCritical)
	assert.Equal(t, FilterCritical, st.Active())

	// Selecting the other toggle flips, it does not stack.
	st.SetFilter(FilterOk)
	assert.Equal(t, FilterOk, st.Active())
	assert.False(t, st.ShowOnlyCritical)

	st.SetFilter(FilterCritical)
	assert.Equal(t, FilterCritical, st.Active())
	assert.False(t, st.ShowOnlyOk)

	st.SetFilter(FilterNone)
	assert.Equal(t, FilterNone, st.Active())
	assert.False(t, st.ShowOnlyCritical)
	assert.False(t, st.ShowOnlyOk)
}

func TestSetFilter_Idempotent(t *testing.T) {
	st := NewViewFilterState()

	st.SetFilter(FilterOk)
	before := st
	st.SetFilter(FilterOk)
	assert.Equal(t, before, st)
}

func TestNormalize_BothTogglesOn(t *testing.T) {
	tests := []struct {
		name        string
		lastToggled FilterToggle
		want        FilterToggle
	}{
		{name: "ok toggled last", lastToggled: FilterOk, want: FilterOk},
		{name: "critical toggled last", lastToggled: FilterCritical, want: FilterCritical},
		{name: "no toggle history defaults to critical", lastToggled: FilterNone, want: FilterCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ViewFilterState{
				CurrentPage:      2,
				ShowOnlyCritical: true,
				ShowOnlyOk:       true,
				LastToggled:      tt.lastToggled,
			}
			st.Normalize()

			assert.Equal(t, tt.want, st.Active())
			// Exactly one toggle survives.
			assert.NotEqual(t, st.ShowOnlyCritical, st.ShowOnlyOk)
		})
	}
}

func TestNormalize_RepairsPageFloor(t *testing.T) {
	st := ViewFilterState{CurrentPage: 0}
	st.Normalize()
	assert.Equal(t, 1, st.CurrentPage)

	st = ViewFilterState{CurrentPage: -4}
	st.Normalize()
	assert.Equal(t, 1, st.CurrentPage)
}

func TestApply(t *testing.T) {
	rows := []ClassifiedJob{
		{Job: Job{ID: 4}, Classification: ClassificationOk},
		{Job: Job{ID: 3, RejectionReason: strPtr("Error al dar de alta la empresa")}, Classification: ClassificationCritical},
		{Job: Job{ID: 2}, Classification: ClassificationOk},
		{Job: Job{ID: 1, RejectionReason: strPtr("No existe la empresa, no se creo el usuario")}, Classification: ClassificationCritical},
	}

	t.Run("no filter passes everything through", func(t *testing.T) {
		st := NewViewFilterState()
		assert.Equal(t, rows, st.Apply(rows))
	})

	t.Run("critical filter", func(t *testing.T) {
		st := NewViewFilterState()
		st.SetFilter(FilterCritical)

		got := st.Apply(rows)
		require.Len(t, got, 2)
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	})

	t.Run("ok filter", func(t *testing.T) {
		st := NewViewFilterState()
		st.SetFilter(FilterOk)

		got := st.Apply(rows)
		require.Len(t, got, 2)
		assert.Equal(t, int64(4), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("the two filtered views partition the page", func(t *testing.T) {
		critical := ViewFilterState{ShowOnlyCritical: true}
		ok := ViewFilterState{ShowOnlyOk: true}
		assert.Equal(t, len(rows), len(critical.Apply(rows))+len(ok.Apply(rows)))
	})
}

func TestFilterToggleValid(t *testing.T) {
	assert.True(t, FilterNone.Valid())
	assert.True(t, FilterCritical.Valid())
	assert.True(t, FilterOk.Valid())
	assert.False(t, FilterToggle("both").Valid())
	assert.False(t, FilterToggle("CRITICAL").Valid())
}
