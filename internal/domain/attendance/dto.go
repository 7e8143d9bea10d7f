package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	Username string `json:"username"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	Username string `json:"username"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	ApproverUsername string `json:"approver_username"`
	EntryID          int64  `json:"entry_id"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApproverUsername) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_username",
			Message: "approver_username is required",
		})
	}
	if r.EntryID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_id",
			Message: "entry_id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'Approved' or 'Rejected'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryRequest struct {
	Username string
	Year     int
	Month    int
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type EntryResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name,omitempty"`
	InTime      string  `json:"in_time"`
	OutTime     *string `json:"out_time"`
	Status      string  `json:"status"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type CheckResponse struct {
	EntryID int64  `json:"entry_id"`
	Status  string `json:"status"`
}

type DaySummaryResponse struct {
	WorkDate     string  `json:"work_date"`
	FirstCheckIn string  `json:"first_check_in"`
	LastCheckOut string  `json:"last_check_out"`
	HoursWorked  float64 `json:"hours_worked"`
}

type SummaryTotals struct {
	DaysWorked       int     `json:"days_worked"`
	ExpectedWorkdays int     `json:"expected_workdays"`
	TotalHours       float64 `json:"total_hours"`
	IsFullAttendance bool    `json:"is_full_attendance"`
}

type SummaryResponse struct {
	Username string               `json:"username"`
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Summary  SummaryTotals        `json:"summary"`
	Details  []DaySummaryResponse `json:"details"`
}

type TeamSummaryResponse struct {
	LeadUsername string            `json:"lead_username"`
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	Members      []SummaryResponse `json:"members"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func ToEntryResponse(e TimeEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Username:    e.Username,
		DisplayName: e.DisplayName,
		InTime:      e.InTime.Format(time.RFC3339),
		OutTime:     timePtrToString(e.OutTime),
		Status:      e.Status,
		ApprovedBy:  e.ApprovedBy,
		ApprovedAt:  timePtrToString(e.ApprovedAt),
		Notes:       e.Notes,
	}
}
