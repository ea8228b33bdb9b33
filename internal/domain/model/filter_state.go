package model

// FilterToggle identifies which of the two mutually exclusive row filters is
// active, if any.
type FilterToggle string

const (
	// FilterNone shows every assembled row.
	FilterNone FilterToggle = ""
	// FilterCritical shows only rows classified critical.
	FilterCritical FilterToggle = "critical"
	// FilterOk shows only rows classified ok.
	FilterOk FilterToggle = "ok"
)

// Valid returns true for the three recognized toggle values.
func (t FilterToggle) Valid() bool {
	return t == FilterNone || t == FilterCritical || t == FilterOk
}

// ViewFilterState is the session-scoped view state: the current page number
// and the pair of "show only" toggles. The two toggles are mutually
// exclusive; the pair being simultaneously true is a transient invalid state
// that Normalize resolves before anything downstream can observe it.
//
// The state is a plain value passed into and returned from each operation.
// Each operator session owns its own copy; nothing here is process-global.
type ViewFilterState struct {
	CurrentPage      int          `json:"current_page"`
	ShowOnlyCritical bool         `json:"show_only_critical"`
	ShowOnlyOk       bool         `json:"show_only_ok"`
	LastToggled      FilterToggle `json:"last_toggled,omitempty"`
}

// NewViewFilterState returns the initial state: page 1, no filter active.
func NewViewFilterState() ViewFilterState {
	return ViewFilterState{CurrentPage: 1}
}

// Normalize resolves the invalid both-toggles-on state. The interaction
// boundary disables the second toggle while the first is active, so this only
// fires when state arrives through another path (e.g. restored from storage).
// Resolution is last-toggle-wins; with no toggle history the critical filter
// is kept.
func (s *ViewFilterState) Normalize() {
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	if !s.ShowOnlyCritical || !s.ShowOnlyOk {
		return
	}
	switch s.LastToggled {
	case FilterOk:
		s.ShowOnlyCritical = false
	default:
		s.ShowOnlyOk = false
		s.LastToggled = FilterCritical
	}
}

// SetFilter moves the state machine to the requested toggle. Selecting the
// toggle that is already active is a no-op; FilterNone turns the active
// toggle off and clears the toggle history.
func (s *ViewFilterState) SetFilter(t FilterToggle) {
	switch t {
	case FilterCritical:
		s.ShowOnlyCritical = true
		s.ShowOnlyOk = false
		s.LastToggled = FilterCritical
	case FilterOk:
		s.ShowOnlyOk = true
		s.ShowOnlyCritical = false
		s.LastToggled = FilterOk
	case FilterNone:
		s.ShowOnlyCritical = false
		s.ShowOnlyOk = false
		s.LastToggled = FilterNone
	}
}

// Active reports which filter is currently in effect.
func (s ViewFilterState) Active() FilterToggle {
	switch {
	case s.ShowOnlyCritical:
		return FilterCritical
	case s.ShowOnlyOk:
		return FilterOk
	default:
		return FilterNone
	}
}

// Apply selects the display subset from the current page's assembled rows.
// Filtering never re-queries the store: the counts shown and the filtered row
// set stay consistent with the unfiltered page.
func (s ViewFilterState) Apply(rows []ClassifiedJob) []ClassifiedJob {
	want := Classification("")
	switch s.Active() {
	case FilterCritical:
		want = ClassificationCritical
	case FilterOk:
		want = ClassificationOk
	case FilterNone:
		return rows
	}

	out := make([]ClassifiedJob, 0, len(rows))
	for _, r := range rows {
		if r.Classification == want {
			out = append(out, r)
		}
	}
	return out
}
