package request

import (
	"errors"
	"testing"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/permissions"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

func TestCreateWorkOrderRequest_ToCommand(t *testing.T) {
	r := CreateWorkOrderRequest{
		ClientRef:   " acme ",
		SiteRef:     " site-9 ",
		ServiceType: "HVAC",
		Description: " Unit is leaking ",
		Priority:    "P-2",
		ClientPrice: decimal.RequireFromString("450.00"),
		Currency:    "usd",
	}

	cmd := r.ToCommand()
	if cmd.ClientRef != "acme" || cmd.SiteRef != "site-9" || cmd.Description != "Unit is leaking" {
		t.Fatalf("expected trimmed fields, got %+v", cmd)
	}
	if cmd.Priority != entities.PriorityP2 || cmd.Currency != "USD" {
		t.Fatalf("unexpected priority/currency: %+v", cmd)
	}
	if !cmd.ClientPrice.Equal(decimal.RequireFromString("450")) {
		t.Fatalf("unexpected price %s", cmd.ClientPrice)
	}
}

func TestValidation_FieldErrors(t *testing.T) {
	RegisterJSONTagNames()

	err := binding.Validator.ValidateStruct(&ChangePriorityRequest{Priority: "P-9"})
	fields := FieldErrors(err)
	if fields["priority"] != "oneof=P-1 P-2 P-3 P-4" {
		t.Fatalf("unexpected field errors: %v", fields)
	}

	err = binding.Validator.ValidateStruct(&AddNoteRequest{Priority: "Low"})
	if got := FieldErrors(err); got["body"] != "required" {
		t.Fatalf("unexpected field errors: %v", got)
	}

	if FieldErrors(errors.New("eof")) != nil {
		t.Fatalf("expected nil for non validation error")
	}
}

func TestPermissionCheckRequest_Resolve(t *testing.T) {
	r := PermissionCheckRequest{Role: "Employee", Permissions: []string{"nte:view"}}
	if r.ResolveMode() != CheckModeAll {
		t.Fatalf("expected default mode all")
	}
	perms := r.ResolvePermissions()
	if len(perms) != 1 || perms[0] != permissions.NTEView {
		t.Fatalf("unexpected permissions %v", perms)
	}
}
