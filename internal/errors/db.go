package errors

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapDBError maps store-level errors to AppError instances:
//   - context deadline exceeded → Timeout
//   - context canceled → Canceled
//   - pgx.ErrNoRows → NotFound
//   - query_canceled (statement_timeout) → Timeout
//   - connection-class failures → StoreUnavailable
//   - any other PostgreSQL error → Internal
//
// Store failures terminate the whole refresh; nothing here recovers into a
// partial result. If the error is already an AppError or is not a recognized
// database error, it is returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "The query exceeded its time limit.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "The refresh was canceled.",
			Cause:   err,
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found",
			Cause:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

// mapPgError maps PostgreSQL-specific errors onto the monitor taxonomy.
func mapPgError(pgErr *pgconn.PgError) error {
	switch {
	case pgErr.Code == pgerrcode.QueryCanceled:
		// statement_timeout fires server-side as query_canceled
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "The query was canceled by the server time limit.",
			Cause:   pgErr,
		}
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CrashShutdown:
		return &AppError{
			Code:    ErrCodeStoreUnavailable,
			Message: "The job store is unavailable. Please try again.",
			Cause:   pgErr,
		}
	default:
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "A database error occurred. Please try again.",
			Cause:   pgErr,
		}
	}
}
