package attendance

import (
	"time"
)

// Entry statuses form a small state machine: Pending may move to Approved or
// Rejected exactly once; both are terminal.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// TimeEntry is a single attendance record. An entry with a nil OutTime is the
// user's open record; the store guarantees at most one per user.
type TimeEntry struct {
	ID         int64
	Username   string
	InTime     time.Time
	OutTime    *time.Time
	Status     string
	ApprovedBy *string
	ApprovedAt *time.Time
	Notes      *string

	// Join fields for approval listings
	DisplayName *string
}

// Decided reports whether the entry has reached a terminal approval state.
func (e *TimeEntry) Decided() bool {
	return e.Status != StatusPending
}

// DaySummary is one calendar day's aggregation of approved, closed entries.
type DaySummary struct {
	WorkDate     time.Time
	FirstCheckIn time.Time
	LastCheckOut time.Time
	HoursWorked  float64
}
