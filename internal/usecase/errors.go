package usecase

import (
	"errors"
	"fmt"

	"workorder_engine/internal/domain/permissions"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrActingUserRequired = errors.New("acting user is required")
)

// ValidationError is a missing or malformed input, detected before any side effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError means the acting user's role lacks a permission.
type AuthorizationError struct {
	Role       permissions.Role
	Permission permissions.Permission
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q lacks permission %q", e.Role, e.Permission)
}

// ConflictError means the work order changed after it was read. The caller
// must re-read and retry.
type ConflictError struct {
	WorkOrderID     string
	ExpectedVersion int64
	Err             error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("work order %s changed since version %d, reload and retry", e.WorkOrderID, e.ExpectedVersion)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed store call. Nothing was changed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
