package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetLead(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
	AssignLead(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	directoryService user.DirectoryService
}

func NewUserHandler(directoryService user.DirectoryService) UserHandler {
	return &userHandlerImpl{
		directoryService: directoryService,
	}
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	result, err := h.directoryService.GetUser(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLead implements UserHandler.
func (h *userHandlerImpl) GetLead(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	result, err := h.directoryService.GetLead(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTeam implements UserHandler.
func (h *userHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	team, err := h.directoryService.ListTeam(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"members": team})
}

// AssignLead implements UserHandler.
func (h *userHandlerImpl) AssignLead(w http.ResponseWriter, r *http.Request) {
	var req user.AssignLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.directoryService.AssignLead(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lead assigned successfully", nil)
}
