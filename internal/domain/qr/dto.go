package qr

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	LeadUsername   string `json:"lead_username"`
	MemberUsername string `json:"member_username"`
	Action         string `json:"action"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeadUsername) {
		errs = append(errs, validator.ValidationError{
			Field:   "lead_username",
			Message: "lead_username is required",
		})
	}
	if validator.IsEmpty(r.MemberUsername) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_username",
			Message: "member_username is required",
		})
	}
	if !ValidAction(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be 'check-in' or 'check-out'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VerifyRequest struct {
	Token string `json:"token"`
	// MemberUsername is optional; when present the token must have been
	// issued for that member.
	MemberUsername string `json:"member_username"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	} else if !validator.IsValidQRToken(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is malformed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateResponse struct {
	Token            string `json:"token"`
	MemberUsername   string `json:"member_username"`
	MemberName       string `json:"member_name"`
	Action           string `json:"action"`
	ExpiresAt        string `json:"expires_at"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type VerifyResponse struct {
	Action         string `json:"action"`
	MemberUsername string `json:"member_username"`
	EntryID        int64  `json:"entry_id"`
	Timestamp      string `json:"timestamp"`
}

type StatusResponse struct {
	Token          string  `json:"token"`
	MemberUsername string  `json:"member_username"`
	LeadUsername   string  `json:"lead_username"`
	Action         string  `json:"action"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	ExpiresAt      string  `json:"expires_at"`
	UsedAt         *string `json:"used_at"`
	IsExpired      bool    `json:"is_expired"`
}

func ToStatusResponse(q QRRequest, now time.Time) StatusResponse {
	var usedAt *string
	if q.UsedAt != nil {
		formatted := q.UsedAt.Format(time.RFC3339)
		usedAt = &formatted
	}
	return StatusResponse{
		Token:          q.Token,
		MemberUsername: q.MemberUsername,
		LeadUsername:   q.LeadUsername,
		Action:         q.Action,
		Status:         q.Status,
		CreatedAt:      q.CreatedAt.Format(time.RFC3339),
		ExpiresAt:      q.ExpiresAt.Format(time.RFC3339),
		UsedAt:         usedAt,
		IsExpired:      q.Expired(now),
	}
}
