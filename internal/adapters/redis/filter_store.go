// Package redis provides Redis-based adapters for the monitor.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gs1ops/edimon/internal/domain/model"
)

// FilterStateStore is a Redis-backed implementation of
// core.FilterStateStore. State is keyed by operator session id, so two
// concurrent sessions can never observe each other's toggles or page number.
type FilterStateStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewFilterStateStore creates a filter state store with the default key
// prefix. The TTL bounds how long an idle session's state survives.
func NewFilterStateStore(client redis.UniversalClient, ttl time.Duration) *FilterStateStore {
	return &FilterStateStore{
		client: client,
		prefix: "monitor:filter:",
		ttl:    ttl,
	}
}

// NewFilterStateStoreWithPrefix creates a filter state store with a custom
// key prefix.
func NewFilterStateStoreWithPrefix(client redis.UniversalClient, prefix string, ttl time.Duration) *FilterStateStore {
	return &FilterStateStore{client: client, prefix: prefix, ttl: ttl}
}

// Get returns the session's filter state, or the initial state when the
// session has none yet. Restored state is normalized before it is returned,
// so the invalid both-toggles-on combination can never escape this boundary.
func (s *FilterStateStore) Get(ctx context.Context, sessionID string) (model.ViewFilterState, error) {
	if sessionID == "" {
		return model.ViewFilterState{}, errors.New("session id cannot be empty")
	}

	data, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewViewFilterState(), nil
		}
		return model.ViewFilterState{}, fmt.Errorf("redis get: %w", err)
	}

	var st model.ViewFilterState
	if unmarshalErr := json.Unmarshal([]byte(data), &st); unmarshalErr != nil {
		// Corrupt state is not worth failing a refresh over; start fresh.
		return model.NewViewFilterState(), nil
	}
	st.Normalize()
	return st, nil
}

// Save persists the session's filter state, refreshing the session TTL.
func (s *FilterStateStore) Save(ctx context.Context, sessionID string, state model.ViewFilterState) error {
	if sessionID == "" {
		return errors.New("session id cannot be empty")
	}

	state.Normalize()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal filter state: %w", err)
	}
	return s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err()
}
