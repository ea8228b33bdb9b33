package model

import "time"

// PageQuery groups the inputs for one monitor page request. The window is
// half-open: rows with created_at in [WindowStart, WindowEnd) match.
// A nil Platform matches any platform; the store layer must express that as a
// true pass-through predicate, not a null-equality condition.
type PageQuery struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Platform    *string   `json:"platform,omitempty"`
	Page        int       `json:"page"`
	PageSize    int       `json:"page_size"`
}

// PageResult is the classified, ordered result of one page request. It is
// recomputed fresh for every request; nothing here is persisted.
//
// CriticalCount and OkCount cover the rows of the current page only, not the
// whole matching set, so the red/green summary always agrees with what the
// operator sees on screen. CriticalCount+OkCount == len(Rows) always holds.
type PageResult struct {
	TotalMatchingRows int             `json:"total_matching_rows"`
	Rows              []ClassifiedJob `json:"rows"`
	CriticalCount     int             `json:"critical_count"`
	OkCount           int             `json:"ok_count"`
}

// PageNav describes the navigation affordances for a resolved page.
type PageNav struct {
	EffectivePage int  `json:"effective_page"`
	Offset        int  `json:"offset"`
	CanGoPrevious bool `json:"can_go_previous"`
	CanGoNext     bool `json:"can_go_next"`
	LastPage      int  `json:"last_page"`
}

// MonitorView is the full payload consumed by the rendering layer: the
// unfiltered page result, the display subset after the session filter is
// applied, and the navigation state.
type MonitorView struct {
	Result       PageResult      `json:"result"`
	Display      []ClassifiedJob `json:"display"`
	Nav          PageNav         `json:"nav"`
	ActiveFilter FilterToggle    `json:"active_filter,omitempty"`
	Platform     string          `json:"platform"`
}
