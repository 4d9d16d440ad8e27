package handler

import (
	"encoding/json"
	"net/http"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/response"
	"neuroclinic/pkg/validator"

	"github.com/gorilla/mux"
)

// FormHandler describes create forms and applies field edits, so clients can
// render forms and their prefills without hard-coding them.
type FormHandler struct {
	registry  usecase.Registry
	validator *validator.CustomValidator
}

func NewFormHandler(registry usecase.Registry, validator *validator.CustomValidator) *FormHandler {
	return &FormHandler{
		registry:  registry,
		validator: validator,
	}
}

func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	uc, err := h.registry.Lookup(mux.Vars(r)["entity"])
	if err != nil {
		writeError(w, err, "Unknown form")
		return
	}

	form, err := uc.Form(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load form")
		return
	}

	response.Success(w, http.StatusOK, "Form retrieved successfully", form)
}

func (h *FormHandler) ChangeField(w http.ResponseWriter, r *http.Request) {
	uc, err := h.registry.Lookup(mux.Vars(r)["entity"])
	if err != nil {
		writeError(w, err, "Unknown form")
		return
	}

	var req dto.FieldChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := uc.ChangeField(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to apply change")
		return
	}

	response.Success(w, http.StatusOK, "Field updated", result)
}
