package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) attendance.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const entryColumns = `id, username, in_time, out_time, status, approved_by, approved_at, notes`

func scanEntry(row pgx.Row) (attendance.TimeEntry, error) {
	var e attendance.TimeEntry
	err := row.Scan(
		&e.ID, &e.Username, &e.InTime, &e.OutTime, &e.Status,
		&e.ApprovedBy, &e.ApprovedAt, &e.Notes,
	)
	return e, err
}

// Create implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry attendance.TimeEntry) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (username, in_time, status, approved_by, approved_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.Username,
		entry.InTime,
		entry.Status,
		entry.ApprovedBy,
		entry.ApprovedAt,
		entry.Notes,
	).Scan(&entry.ID)

	if err != nil {
		// The partial unique index on open entries is the real guard against
		// concurrent check-ins; the service-level pre-check only provides a
		// friendlier fast path.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.TimeEntry{}, attendance.ErrOpenEntryExists
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetOpenEntry implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) GetOpenEntry(ctx context.Context, username string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE username = $1
		  AND out_time IS NULL
		ORDER BY in_time DESC, id DESC
		LIMIT 1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.TimeEntry{}, attendance.ErrNoOpenEntry
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to get open entry: %w", err)
	}

	return entry, nil
}

// Close implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) Close(ctx context.Context, entryID int64, outTime time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET out_time = $1
		WHERE id = $2
		  AND out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, outTime, entryID)
	if err != nil {
		return fmt.Errorf("failed to close time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoOpenEntry
	}

	return nil
}

// ListByUsername implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) ListByUsername(ctx context.Context, username string, limit int) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE username = $1
		ORDER BY in_time DESC, id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListPending implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) ListPending(ctx context.Context, approverUsername string, authority user.Authority) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var rows pgx.Rows
	var err error

	switch authority {
	case user.AuthorityGlobal:
		query := `
			SELECT te.id, te.username, te.in_time, te.out_time, te.status,
			       te.approved_by, te.approved_at, te.notes, u.display_name
			FROM time_entries te
			JOIN users u ON u.username = te.username
			WHERE te.status = $1
			ORDER BY te.in_time DESC
		`
		rows, err = q.Query(ctx, query, attendance.StatusPending)
	case user.AuthorityEdgeScoped:
		query := `
			SELECT te.id, te.username, te.in_time, te.out_time, te.status,
			       te.approved_by, te.approved_at, te.notes, u.display_name
			FROM time_entries te
			JOIN lead_assignments la ON la.member_username = te.username
			JOIN users u ON u.username = te.username
			WHERE la.lead_username = $1 AND te.status = $2
			ORDER BY te.in_time DESC
		`
		rows, err = q.Query(ctx, query, approverUsername, attendance.StatusPending)
	default:
		return nil, attendance.ErrApprovalNotPermitted
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		var e attendance.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.Username, &e.InTime, &e.OutTime, &e.Status,
			&e.ApprovedBy, &e.ApprovedAt, &e.Notes, &e.DisplayName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetForApproval implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) GetForApproval(ctx context.Context, entryID int64, approverUsername string, authority user.Authority) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var row pgx.Row

	switch authority {
	case user.AuthorityGlobal:
		query := `
			SELECT ` + entryColumns + `
			FROM time_entries
			WHERE id = $1
		`
		row = q.QueryRow(ctx, query, entryID)
	case user.AuthorityEdgeScoped:
		query := `
			SELECT te.id, te.username, te.in_time, te.out_time, te.status,
			       te.approved_by, te.approved_at, te.notes
			FROM time_entries te
			JOIN lead_assignments la ON la.member_username = te.username
			WHERE te.id = $1 AND la.lead_username = $2
		`
		row = q.QueryRow(ctx, query, entryID, approverUsername)
	default:
		return attendance.TimeEntry{}, attendance.ErrApprovalNotPermitted
	}

	entry, err := scanEntry(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.TimeEntry{}, attendance.ErrEntryNotFound
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to get entry for approval: %w", err)
	}

	return entry, nil
}

// Decide implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) Decide(ctx context.Context, entryID int64, status string, approvedBy string, notes string) error {
	q := GetQuerier(ctx, r.db)

	// Conditional on Pending: a concurrent decision that got there first
	// leaves zero rows affected.
	query := `
		UPDATE time_entries
		SET status = $1, approved_by = $2, approved_at = NOW(), notes = $3
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, notes, entryID, attendance.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryAlreadyDecided
	}

	return nil
}

// SummarizeMonth implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) SummarizeMonth(ctx context.Context, username string, monthStart, nextMonthStart time.Time) ([]attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			DATE(in_time) AS work_date,
			MIN(in_time) AS first_check_in,
			MAX(out_time) AS last_check_out,
			SUM(EXTRACT(EPOCH FROM (out_time - in_time)) / 60.0) / 60.0 AS hours_worked
		FROM time_entries
		WHERE username = $1
		  AND status = $2
		  AND out_time IS NOT NULL
		  AND in_time >= $3
		  AND in_time < $4
		GROUP BY work_date
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, username, attendance.StatusApproved, monthStart, nextMonthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize month: %w", err)
	}
	defer rows.Close()

	var days []attendance.DaySummary
	for rows.Next() {
		var d attendance.DaySummary
		if err := rows.Scan(&d.WorkDate, &d.FirstCheckIn, &d.LastCheckOut, &d.HoursWorked); err != nil {
			return nil, fmt.Errorf("failed to scan day summary: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}
