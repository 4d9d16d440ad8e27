package handler

import (
	"net/http"

	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/response"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{referenceUsecase: referenceUsecase}
}

func (h *ReferenceHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.referenceUsecase.Specialties(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *ReferenceHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.referenceUsecase.Rooms(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *ReferenceHandler) GetResponsibles(w http.ResponseWriter, r *http.Request) {
	responsibles, err := h.referenceUsecase.Responsibles(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get responsibles")
		return
	}

	response.Success(w, http.StatusOK, "Responsibles retrieved successfully", responsibles)
}
