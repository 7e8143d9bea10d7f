package qr

import "time"

// Actions a QR token can authorize.
const (
	ActionCheckIn  = "check-in"
	ActionCheckOut = "check-out"
)

// Token statuses. A token leaves pending exactly once: used on success,
// failed when the ledger precondition no longer holds at verification time.
// Expiry is evaluated lazily; an expired pending token simply never verifies.
const (
	StatusPending = "pending"
	StatusUsed    = "used"
	StatusFailed  = "failed"
)

// TokenTTL is how long an issued token stays verifiable.
const TokenTTL = 5 * time.Minute

// QRRequest is a single-use remote check-in/out authorization issued by a
// lead for one member and one action.
type QRRequest struct {
	ID             int64
	Token          string
	LeadUsername   string
	MemberUsername string
	Action         string
	Status         string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	UsedAt         *time.Time
}

// Expired reports whether the token's window has passed at the given instant.
func (q *QRRequest) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

// Verifiable reports whether the token can still be consumed.
func (q *QRRequest) Verifiable(now time.Time) bool {
	return q.Status == StatusPending && !q.Expired(now)
}

func ValidAction(action string) bool {
	return action == ActionCheckIn || action == ActionCheckOut
}
