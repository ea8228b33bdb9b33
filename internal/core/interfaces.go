// Package core defines the contracts between the monitor's service layer and
// its external collaborators (ports in hexagonal architecture). Service
// implementations depend on these interfaces, not concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/domain/monitor"
)

// JobStore is the boundary to the legacy relational store. The monitor never
// writes to it.
type JobStore interface {
	// Count returns the number of rows matching the spec's window and
	// platform predicate.
	Count(ctx context.Context, spec monitor.QuerySpec) (int, error)
	// Page returns one offset/limit slice of the matching rows, ordered
	// descending by created_at (id descending on ties).
	Page(ctx context.Context, spec monitor.QuerySpec) ([]model.Job, error)
	// FetchParametersXML lazily fetches the raw XML parameter blob for a
	// single job. It is only called for the job selected for drill-down,
	// never for the page result set. Returns NotFound when the job does not
	// exist; a nil string when the job has no parameters.
	FetchParametersXML(ctx context.Context, jobID int64) (*string, error)
}

// FilterStateStore persists per-session view filter state. Each operator
// session owns an independent state; implementations must never share state
// across sessions.
type FilterStateStore interface {
	// Get returns the session's state, or the initial state when the session
	// has none yet.
	Get(ctx context.Context, sessionID string) (model.ViewFilterState, error)
	// Save persists the session's state.
	Save(ctx context.Context, sessionID string, state model.ViewFilterState) error
}

// CacheRepository is a byte cache with TTL semantics, used for the optional
// time-boxed page-result cache. Keys are exact-match only.
type CacheRepository interface {
	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get retrieves a value by key; returns nil when the key is absent or
	// expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes a key. Returns true if the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	// Health checks the cache connection.
	Health(ctx context.Context) error
}
