package qr

import (
	"context"
	"time"
)

// QRRequestRepository defines data access for QR requests.
type QRRequestRepository interface {
	// Create stores a freshly issued token.
	Create(ctx context.Context, req QRRequest) (QRRequest, error)

	// GetByToken retrieves a token without locking. Returns ErrTokenNotFound
	// when unknown.
	GetByToken(ctx context.Context, token string) (QRRequest, error)

	// GetByTokenForUpdate retrieves a token and locks its row for the
	// enclosing transaction, serializing concurrent verification attempts.
	GetByTokenForUpdate(ctx context.Context, token string) (QRRequest, error)

	// MarkUsed flips a token to used with the consumption time.
	MarkUsed(ctx context.Context, token string, usedAt time.Time) error

	// MarkFailed flips a token to failed. Failed tokens are terminal; the
	// member must ask the lead for a fresh one.
	MarkFailed(ctx context.Context, token string) error
}
