package handler

import (
	"net/http"

	"neuroclinic/config"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/pkg/response"
)

type SessionHandler struct {
	mode config.Mode
}

func NewSessionHandler(mode config.Mode) *SessionHandler {
	return &SessionHandler{mode: mode}
}

// GetCurrentUser reports the caller and the mode the server runs in.
func (h *SessionHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", dto.SessionResponse{
		Mode:     string(h.mode),
		UserID:   principal.ID,
		Email:    principal.Email,
		FullName: principal.FullName,
		Role:     string(principal.Role),
	})
}
