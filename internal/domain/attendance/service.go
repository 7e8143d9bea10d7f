package attendance

import (
	"context"
)

// LedgerService defines business logic for attendance operations.
type LedgerService interface {
	// CheckIn opens a time entry for the user. Manager and lead entries are
	// approved immediately; member entries wait for their lead.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckResponse, error)

	// CheckOut closes the user's open entry.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckResponse, error)

	// ListEntries returns the user's entries, newest first.
	ListEntries(ctx context.Context, username string) ([]EntryResponse, error)

	// ListPending returns the entries awaiting the approver's decision.
	ListPending(ctx context.Context, approverUsername string) ([]EntryResponse, error)

	// Decide approves or rejects a pending entry.
	Decide(ctx context.Context, req DecideRequest) (EntryResponse, error)

	// Summarize computes the monthly attendance summary for one user.
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error)

	// SummarizeTeam computes monthly summaries for every member assigned to
	// the lead.
	SummarizeTeam(ctx context.Context, leadUsername string, year, month int) (TeamSummaryResponse, error)
}
