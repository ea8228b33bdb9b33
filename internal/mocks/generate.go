// Package mocks provides mock implementations for testing the monitor.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the core interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockStore := mocks.NewMockJobStore(ctrl)
//	mockStore.EXPECT().Count(gomock.Any(), gomock.Any()).Return(42, nil)
package mocks

// Generate mock for JobStore interface from internal/core package.
// This creates MockJobStore with methods for all JobStore interface methods:
// Count, Page, FetchParametersXML
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_store_mock.go github.com/gs1ops/edimon/internal/core JobStore

// Generate mock for FilterStateStore interface from internal/core package.
// This creates MockFilterStateStore with methods for all FilterStateStore interface methods:
// Get, Save
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=filter_state_store_mock.go github.com/gs1ops/edimon/internal/core FilterStateStore

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Health
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/gs1ops/edimon/internal/core CacheRepository
