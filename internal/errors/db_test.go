package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{
			name: "deadline exceeded becomes timeout",
			err:  fmt.Errorf("count jobs: %w", context.DeadlineExceeded),
			pred: IsTimeout,
		},
		{
			name: "canceled context",
			err:  context.Canceled,
			pred: IsCanceled,
		},
		{
			name: "no rows becomes not found",
			err:  pgx.ErrNoRows,
			pred: IsNotFound,
		},
		{
			name: "statement timeout becomes timeout",
			err:  &pgconn.PgError{Code: pgerrcode.QueryCanceled},
			pred: IsTimeout,
		},
		{
			name: "connection exception becomes store unavailable",
			err:  &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			pred: IsStoreUnavailable,
		},
		{
			name: "cannot connect now becomes store unavailable",
			err:  &pgconn.PgError{Code: pgerrcode.CannotConnectNow},
			pred: IsStoreUnavailable,
		},
		{
			name: "admin shutdown becomes store unavailable",
			err:  &pgconn.PgError{Code: pgerrcode.AdminShutdown},
			pred: IsStoreUnavailable,
		},
		{
			name: "other pg error becomes internal",
			err:  &pgconn.PgError{Code: pgerrcode.UndefinedTable},
			pred: IsInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDBError(tt.err)
			require.Error(t, mapped)
			assert.True(t, tt.pred(mapped), "got %v", mapped)
		})
	}
}

func TestMapDBError_PassThrough(t *testing.T) {
	assert.NoError(t, MapDBError(nil))

	// An existing AppError keeps its code.
	already := NotFoundf("job %d not found", 7)
	assert.Same(t, already, MapDBError(already).(*AppError))

	// Unrecognized errors come back unchanged.
	plain := errors.New("something else")
	assert.Equal(t, plain, MapDBError(plain))
}
