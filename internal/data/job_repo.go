// Package data implements the store-facing repositories of the monitor.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gs1ops/edimon/internal/data/pgxutil"
	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/domain/monitor"
	apperrors "github.com/gs1ops/edimon/internal/errors"
)

// JobRepo reads the legacy publication job table. All access is read-only;
// the schema belongs to the upstream legacy system.
type JobRepo struct {
	DB *sql.DB
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db}
}

// jobSelectColumns is the column list for page queries. rejection_reason is
// cast to text so whatever the legacy column holds arrives as its string
// representation and classification never has to deal with odd values.
const jobSelectColumns = `
	j.id, j.created_at, j.platform, j.method,
	j.rejection_reason::text AS rejection_reason,
	j.company_id, c.company_code, c.company_name, c.company_tax_id`

const jobFromClause = `
	FROM legacy_jobs j
	LEFT JOIN companies c ON c.id = j.company_id`

const jobParametersQuery = `
	SELECT parameters_xml::text
	FROM legacy_jobs
	WHERE id = $1`

// Count returns the number of rows matching the spec's window and platform
// predicate. The LEFT JOIN of the page query cannot change row counts, so the
// count query skips it.
func (r *JobRepo) Count(ctx context.Context, spec monitor.QuerySpec) (int, error) {
	where, args := buildJobWhere(spec)
	query := "SELECT COUNT(*) FROM legacy_jobs j " + where

	var total int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&total)
	}); err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("count jobs: %w", err))
	}
	return total, nil
}

// Page returns one offset/limit slice of the matching rows, ordered
// descending by created_at with id descending as the tie-break. The ordering
// is applied on every call so repeated page requests can never duplicate or
// drop rows across page boundaries.
func (r *JobRepo) Page(ctx context.Context, spec monitor.QuerySpec) ([]model.Job, error) {
	where, args := buildJobWhere(spec)
	query := "SELECT " + jobSelectColumns + jobFromClause + " " + where +
		fmt.Sprintf(" ORDER BY j.created_at DESC, j.id DESC LIMIT $%d OFFSET $%d",
			len(args)+1, len(args)+2)
	args = append(args, spec.Limit, spec.Offset)

	var rows []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		pgRows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer pgRows.Close()
		rows, err = pgx.CollectRows(pgRows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("page jobs: %w", err))
	}
	return rows, nil
}

// FetchParametersXML fetches the raw XML parameter blob for a single job.
// A job without parameters yields a nil string; a missing job yields NotFound.
func (r *JobRepo) FetchParametersXML(ctx context.Context, jobID int64) (*string, error) {
	var xmlText *string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, jobParametersQuery, jobID).Scan(&xmlText)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("job %d not found", jobID)
		}
		return nil, apperrors.MapDBError(fmt.Errorf("fetch job parameters: %w", err))
	}
	return xmlText, nil
}

// buildJobWhere renders the spec's predicates to a WHERE clause. The window
// is half-open: created_at >= start AND created_at < end. A nil platform
// omits the platform predicate entirely; "no filter" must be a genuine
// pass-through, not a comparison against NULL or an empty string.
func buildJobWhere(spec monitor.QuerySpec) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	conds = append(conds, fmt.Sprintf("j.created_at >= $%d", nextIdx()))
	args = append(args, spec.WindowStart)
	conds = append(conds, fmt.Sprintf("j.created_at < $%d", nextIdx()))
	args = append(args, spec.WindowEnd)

	if spec.Platform != nil {
		conds = append(conds, fmt.Sprintf("j.platform = $%d", nextIdx()))
		args = append(args, *spec.Platform)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
