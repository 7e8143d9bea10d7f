package user

import (
	"context"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// DirectoryService exposes the user/role directory operations.
type DirectoryService interface {
	// GetUser returns the public view of a user.
	GetUser(ctx context.Context, username string) (UserResponse, error)

	// GetLead returns the lead supervising a member.
	GetLead(ctx context.Context, memberUsername string) (UserResponse, error)

	// ListTeam returns the members assigned to a lead.
	ListTeam(ctx context.Context, leadUsername string) ([]UserResponse, error)

	// AssignLead creates a lead->member supervision edge.
	AssignLead(ctx context.Context, req AssignLeadRequest) error
}

type AssignLeadRequest struct {
	LeadUsername   string `json:"lead_username"`
	MemberUsername string `json:"member_username"`
}

func (r *AssignLeadRequest) Validate() error {
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
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"user_level"`
	CreatedAt   string `json:"created_at"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
