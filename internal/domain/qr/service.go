package qr

import "context"

// TokenService defines the two-phase QR check-in/out protocol: a lead issues
// a token, the member's scan verifies it.
type TokenService interface {
	// Generate issues a single-use token after validating the lead-member
	// edge and the ledger precondition for the action.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// Verify consumes a pending token and performs its action against the
	// ledger. A token leaves pending exactly once, even under concurrent
	// verification attempts.
	Verify(ctx context.Context, req VerifyRequest) (VerifyResponse, error)

	// GetStatus returns a read-only view of a token; no state changes.
	GetStatus(ctx context.Context, token string) (StatusResponse, error)
}
