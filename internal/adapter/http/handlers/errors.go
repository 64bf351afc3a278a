package handlers

import (
	"context"
	"errors"
	"net/http"

	"workorder_engine/internal/domain/lifecycle"
	"workorder_engine/internal/domain/nte"
	"workorder_engine/internal/usecase"
	"workorder_engine/pkg"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Acting user is required", http.StatusUnauthorized)
)

func mapWorkOrderError(err error) *pkg.AppError {
	var (
		validationErr *usecase.ValidationError
		authErr       *usecase.AuthorizationError
		conflictErr   *usecase.ConflictError
		transitionErr *lifecycle.TransitionError
		persistErr    *usecase.PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", validationErr.Error(), http.StatusBadRequest).
			WithDetails(map[string]string{validationErr.Field: validationErr.Message})
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid work order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActingUserRequired):
		return errMissingIdentity
	case errors.As(err, &authErr):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden).
			WithDetails(map[string]string{"permission": string(authErr.Permission)})
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, nte.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("NTE_REQUEST_NOT_FOUND", "NTE request not found", http.StatusNotFound)
	case errors.As(err, &conflictErr):
		return pkg.NewDomainError("VERSION_CONFLICT", "The work order was changed by someone else. Reload it and try again", err, http.StatusConflict)
	case errors.Is(err, nte.ErrAlreadyResponded):
		return pkg.NewDomainErrorSimple("NTE_ALREADY_RESPONDED", "This NTE request was already answered", http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_TRANSITION", transitionErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, nte.ErrNotSentToClient):
		return pkg.NewDomainErrorSimple("NTE_NOT_SENT", "This NTE request has not been sent to the client", http.StatusUnprocessableEntity)
	case errors.Is(err, nte.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("NTE_INVALID_AMOUNT", "NTE amounts must not be negative", http.StatusUnprocessableEntity)
	case errors.As(err, &persistErr) && errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "The work order store did not answer in time. Nothing was changed, try again", err, http.StatusServiceUnavailable)
	case errors.As(err, &persistErr):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "The work order could not be saved. Nothing was changed, try again", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
