package handler

import (
	"encoding/json"
	"net/http"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/response"
	"neuroclinic/pkg/validator"
)

// EntityHandler serves the list and create endpoints of one entity.
type EntityHandler struct {
	usecase   usecase.EntityUsecase
	validator *validator.CustomValidator
}

func NewEntityHandler(entityUsecase usecase.EntityUsecase, validator *validator.CustomValidator) *EntityHandler {
	return &EntityHandler{
		usecase:   entityUsecase,
		validator: validator,
	}
}

// List reads "search" as the search term and the other query parameters as
// categorical filters. Parameters the entity has no category for are ignored.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	req := dto.ListRequest{Filters: make(map[string]string)}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if key == "search" {
			req.Search = values[0]
			continue
		}
		req.Filters[key] = values[0]
	}

	list, err := h.usecase.List(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to load "+h.usecase.Entity().String())
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", list)
}

func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create record")
		return
	}

	response.Success(w, http.StatusCreated, result.Notification.Title, result)
}
