package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/qr"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type qrRequestRepository struct {
	db *database.DB
}

func NewQRRequestRepository(db *database.DB) qr.QRRequestRepository {
	return &qrRequestRepository{db: db}
}

const qrColumns = `id, token, lead_username, member_username, action_type, status, created_at, expires_at, used_at`

func scanQRRequest(row pgx.Row) (qr.QRRequest, error) {
	var req qr.QRRequest
	err := row.Scan(
		&req.ID, &req.Token, &req.LeadUsername, &req.MemberUsername,
		&req.Action, &req.Status, &req.CreatedAt, &req.ExpiresAt, &req.UsedAt,
	)
	return req, err
}

// Create implements qr.QRRequestRepository.
func (r *qrRequestRepository) Create(ctx context.Context, req qr.QRRequest) (qr.QRRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO qr_requests (token, lead_username, member_username, action_type, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		req.Token,
		req.LeadUsername,
		req.MemberUsername,
		req.Action,
		req.Status,
		req.CreatedAt,
		req.ExpiresAt,
	).Scan(&req.ID)

	if err != nil {
		return qr.QRRequest{}, fmt.Errorf("failed to create qr request: %w", err)
	}

	return req, nil
}

// GetByToken implements qr.QRRequestRepository.
func (r *qrRequestRepository) GetByToken(ctx context.Context, token string) (qr.QRRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + qrColumns + `
		FROM qr_requests
		WHERE token = $1
	`

	req, err := scanQRRequest(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return qr.QRRequest{}, qr.ErrTokenNotFound
		}
		return qr.QRRequest{}, fmt.Errorf("failed to get qr request: %w", err)
	}

	return req, nil
}

// GetByTokenForUpdate implements qr.QRRequestRepository.
func (r *qrRequestRepository) GetByTokenForUpdate(ctx context.Context, token string) (qr.QRRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Row lock serializes concurrent verification attempts on the same token
	// for the duration of the enclosing transaction.
	query := `
		SELECT ` + qrColumns + `
		FROM qr_requests
		WHERE token = $1
		FOR UPDATE
	`

	req, err := scanQRRequest(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return qr.QRRequest{}, qr.ErrTokenNotFound
		}
		return qr.QRRequest{}, fmt.Errorf("failed to lock qr request: %w", err)
	}

	return req, nil
}

// MarkUsed implements qr.QRRequestRepository.
func (r *qrRequestRepository) MarkUsed(ctx context.Context, token string, usedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE qr_requests
		SET status = $1, used_at = $2
		WHERE token = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, qr.StatusUsed, usedAt, token, qr.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark qr request used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return qr.ErrInvalidOrExpiredToken
	}

	return nil
}

// MarkFailed implements qr.QRRequestRepository.
func (r *qrRequestRepository) MarkFailed(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE qr_requests
		SET status = $1
		WHERE token = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, qr.StatusFailed, token, qr.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark qr request failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return qr.ErrInvalidOrExpiredToken
	}

	return nil
}
