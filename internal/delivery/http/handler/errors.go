package handler

import (
	"errors"
	"net/http"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/form"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/response"
)

// statusForClass picks the HTTP status of a storage failure.
func statusForClass(class repository.ErrorClass) int {
	switch class {
	case repository.ClassConstraint:
		return http.StatusConflict
	case repository.ClassPermission:
		return http.StatusForbidden
	case repository.ClassTransport:
		return http.StatusServiceUnavailable
	case repository.ClassNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status and body matching err. fallback is the
// message of errors that carry no user-facing text.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var (
		verr    *form.ValidationError
		partial *usecase.PartialFailureError
		serr    *usecase.SubmissionError
		store   *repository.StoreError
	)

	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, usecase.ErrInvalidFilter), errors.Is(err, form.ErrUnknownField):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrUnknownEntity):
		response.NotFound(w, err.Error())
	case errors.Is(err, form.ErrSubmissionInFlight):
		response.Conflict(w, "Submission already in progress")
	case errors.As(err, &partial):
		body := dto.PartialFailureResponse{
			IdentityID: partial.IdentityID,
			Cleanup:    string(partial.Cleanup),
		}
		if partial.CleanupErr != nil {
			body.CleanupError = partial.CleanupErr.Error()
		}
		if errors.As(err, &serr) {
			body.Notification = converter.NotificationToResponse(serr.Notification)
		}
		response.Error(w, http.StatusBadGateway, "Creation partially failed", body)
	case errors.As(err, &serr):
		response.Error(w, statusForClass(repository.ClassOf(err)), serr.Notification.Title, converter.NotificationToResponse(serr.Notification))
	case errors.As(err, &store):
		response.Error(w, statusForClass(store.Class), fallback, store.Message)
	default:
		response.InternalServerError(w, fallback)
	}
}
