package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/response"
	"neuroclinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AccountHandler struct {
	*EntityHandler
	accountUsecase usecase.AccountUsecase
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, validator *validator.CustomValidator) *AccountHandler {
	return &AccountHandler{
		EntityHandler:  NewEntityHandler(accountUsecase, validator),
		accountUsecase: accountUsecase,
	}
}

// MarkPaid settles an account. The body is optional.
func (h *AccountHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid account ID")
		return
	}

	var req dto.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.accountUsecase.MarkPaid(r.Context(), accountID, &req); err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			response.NotFound(w, "Account not found")
			return
		}
		writeError(w, err, "Failed to mark account as paid")
		return
	}

	response.Success(w, http.StatusOK, "Account marked as paid", nil)
}
