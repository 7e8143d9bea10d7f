package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/out errors
	ErrOpenEntryExists   = errors.New("you have an open time entry, please check out first")
	ErrNoOpenEntry       = errors.New("no open time entry found")
	ErrMemberWithoutLead = errors.New("no lead assigned, members should use QR code check-in")

	// Approval errors. A lookup outside the approver's authority reports
	// not-found on purpose: callers cannot distinguish a missing entry from
	// one they have no authority over.
	ErrEntryNotFound        = errors.New("entry not found or you don't have permission")
	ErrEntryAlreadyDecided  = errors.New("entry has already been approved or rejected")
	ErrApprovalNotPermitted = errors.New("only managers and leads can view pending approvals")
)
