package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/qr"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type QRHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type qrHandlerImpl struct {
	tokenService qr.TokenService
}

func NewQRHandler(tokenService qr.TokenService) QRHandler {
	return &qrHandlerImpl{
		tokenService: tokenService,
	}
}

// Generate implements QRHandler.
func (h *qrHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req qr.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tokenService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "QR code generated successfully", result)
}

// Verify implements QRHandler.
func (h *qrHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req qr.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tokenService.Verify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Verification successful", result)
}

// Status implements QRHandler.
func (h *qrHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		response.BadRequest(w, "token is required", nil)
		return
	}

	result, err := h.tokenService.GetStatus(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
