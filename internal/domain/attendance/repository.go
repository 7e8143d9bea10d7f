package attendance

import (
	"context"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

// TimeEntryRepository defines data access for attendance records.
type TimeEntryRepository interface {
	// Create inserts a new time entry and returns it with the generated ID.
	// The caller must run it inside a transaction; a conflict with the
	// open-entry partial unique index surfaces as ErrOpenEntryExists.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetOpenEntry retrieves the user's open entry, newest in_time first with
	// the highest ID breaking ties. Returns ErrNoOpenEntry when none exists.
	GetOpenEntry(ctx context.Context, username string) (TimeEntry, error)

	// Close sets out_time on an entry.
	Close(ctx context.Context, entryID int64, outTime time.Time) error

	// ListByUsername returns the user's entries, newest check-in first,
	// capped at limit.
	ListByUsername(ctx context.Context, username string, limit int) ([]TimeEntry, error)

	// ListPending returns pending entries visible to the given authority:
	// every pending entry for AuthorityGlobal, the approver's edge set for
	// AuthorityEdgeScoped.
	ListPending(ctx context.Context, approverUsername string, authority user.Authority) ([]TimeEntry, error)

	// GetForApproval retrieves an entry scoped by the approver's authority.
	// Out-of-scope and missing entries both return ErrEntryNotFound.
	GetForApproval(ctx context.Context, entryID int64, approverUsername string, authority user.Authority) (TimeEntry, error)

	// Decide moves a pending entry to Approved or Rejected. The update is
	// conditional on the entry still being Pending; a lost race returns
	// ErrEntryAlreadyDecided.
	Decide(ctx context.Context, entryID int64, status string, approvedBy string, notes string) error

	// SummarizeMonth aggregates approved, closed entries per calendar day of
	// check-in within [monthStart, nextMonthStart).
	SummarizeMonth(ctx context.Context, username string, monthStart, nextMonthStart time.Time) ([]DaySummary, error)
}
