package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/qr"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrMemberLoginRefused):
		Forbidden(w, err.Error())

	// User/directory domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNoLeadAssigned):
		NotFound(w, "No lead assigned")
	case errors.Is(err, user.ErrUsernameExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrAssignmentExists),
		errors.Is(err, user.ErrMemberHasLead):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrNotAMember):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrNotALead),
		errors.Is(err, user.ErrNotAssignedToLead),
		errors.Is(err, user.ErrApprovalNotAllowed):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOpenEntryExists),
		errors.Is(err, attendance.ErrEntryAlreadyDecided):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoOpenEntry),
		errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrMemberWithoutLead),
		errors.Is(err, attendance.ErrApprovalNotPermitted):
		Forbidden(w, err.Error())

	// QR domain errors
	case errors.Is(err, qr.ErrInvalidOrExpiredToken):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, qr.ErrSubjectMismatch),
		errors.Is(err, qr.ErrOnlyLeadsCanIssue):
		Forbidden(w, err.Error())
	case errors.Is(err, qr.ErrSubjectNotMember):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, qr.ErrTokenNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
