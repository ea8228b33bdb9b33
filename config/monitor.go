package config

import (
	"fmt"
	"time"
)

// MonitorConfig contains the query and pagination defaults of the
// publication monitor.
type MonitorConfig struct {
	// PageSize is the default rows-per-page. Must be one of the supported
	// sizes: 50, 100, 200 or 500.
	PageSize int `env:"MONITOR_PAGE_SIZE" envDefault:"100"`

	// WindowDays is the trailing default query window in days.
	WindowDays int `env:"MONITOR_WINDOW_DAYS" envDefault:"30"`

	// DefaultPlatform is the platform preselected for new sessions. Empty
	// means no platform filter.
	DefaultPlatform string `env:"MONITOR_DEFAULT_PLATFORM" envDefault:"EDI"`

	// QueryTimeout bounds the count and page queries of one refresh.
	QueryTimeout time.Duration `env:"MONITOR_QUERY_TIMEOUT" envDefault:"10s"`

	// CacheTTL bounds cached page results. Zero disables the cache, which is
	// the safe default for an operator staring at live failures.
	CacheTTL time.Duration `env:"MONITOR_CACHE_TTL" envDefault:"0s"`

	// SessionTTL bounds how long an idle operator session keeps its filter
	// state in Redis.
	SessionTTL time.Duration `env:"MONITOR_SESSION_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to monitor configuration values.
func (m *MonitorConfig) Sanitize() {
	if m.WindowDays <= 0 {
		m.WindowDays = 30
	}
	if m.QueryTimeout < 0 {
		m.QueryTimeout = 0
	}
	if m.CacheTTL < 0 {
		m.CacheTTL = 0
	}
	if m.SessionTTL <= 0 {
		m.SessionTTL = 12 * time.Hour
	}
}

// Validate rejects configuration values that Sanitize cannot repair. The
// page size is deliberately not clamped: a wrong value means a wrong
// deployment, and silently querying with a different size would hide that.
func (m *MonitorConfig) Validate() error {
	switch m.PageSize {
	case 50, 100, 200, 500:
		return nil
	default:
		return fmt.Errorf("unsupported page size %d (must be 50, 100, 200 or 500)", m.PageSize)
	}
}
