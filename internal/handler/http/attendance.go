package http

import (
	"net/http"
	"strconv"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	TeamSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	ledgerService attendance.LedgerService
}

func NewAttendanceHandler(ledgerService attendance.LedgerService) AttendanceHandler {
	return &attendanceHandlerImpl{
		ledgerService: ledgerService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Check-in submitted, waiting for lead approval"
	if result.Status == attendance.StatusApproved {
		message = "Check-in successful (auto-approved)"
	}
	response.Created(w, message, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// ListEntries implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.BadRequest(w, "username parameter is required", nil)
		return
	}

	entries, err := h.ledgerService.ListEntries(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"entries": entries})
}

// ListPending implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	approver := r.URL.Query().Get("approver")
	if approver == "" {
		response.BadRequest(w, "approver parameter is required", nil)
		return
	}

	entries, err := h.ledgerService.ListPending(r.Context(), approver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"pending_entries": entries})
}

// Decide implements AttendanceHandler.
func (h *attendanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req attendance.DecideRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry "+result.Status, result)
}

func summaryParams(r *http.Request) (year int, month int, err error) {
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// MonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	year, month, err := summaryParams(r)
	if username == "" || err != nil {
		response.BadRequest(w, "username, year, and month parameters are required", nil)
		return
	}

	summary, err := h.ledgerService.Summarize(r.Context(), attendance.SummaryRequest{
		Username: username,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// TeamSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeamSummary(w http.ResponseWriter, r *http.Request) {
	lead := r.URL.Query().Get("lead")
	year, month, err := summaryParams(r)
	if lead == "" || err != nil {
		response.BadRequest(w, "lead, year, and month parameters are required", nil)
		return
	}

	summary, err := h.ledgerService.SummarizeTeam(r.Context(), lead, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
