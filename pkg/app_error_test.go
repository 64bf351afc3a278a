package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb unavailable" {
		t.Fatalf("unexpected message %q", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_FAILED", "Invalid request", http.StatusBadRequest)
	withDetails := base.WithDetails(map[string]string{"reason": "required"})

	if base.Details != nil {
		t.Fatalf("base must not be modified")
	}
	if withDetails.ToHTTPError().Details["reason"] != "required" {
		t.Fatalf("expected details")
	}
	if base.Error() != "VALIDATION_FAILED: Invalid request" {
		t.Fatalf("unexpected message %q", base.Error())
	}
}
