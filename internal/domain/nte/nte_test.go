package nte

import (
	"errors"
	"testing"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/permissions"

	"github.com/shopspring/decimal"
)

var (
	t0    = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	actor = entities.ActingUser{Email: "fm@client.test", Role: permissions.RoleExternalAdmin}
)

func sentRequest(at time.Time, amount, clientAmount int64) entities.NTERequest {
	sent := at.Add(time.Minute)
	return entities.NTERequest{
		Date:             at,
		Amount:           decimal.NewFromInt(amount),
		ClientAmount:     decimal.NewFromInt(clientAmount),
		SentToClient:     true,
		SentToClientDate: &sent,
		SentToClientBy:   "vendor@nfc.test",
	}
}

func workOrderWith(reqs ...entities.NTERequest) entities.WorkOrder {
	return entities.WorkOrder{
		ID:          "NFC-7",
		Status:      entities.StatusInProgress,
		ClientPrice: decimal.NewFromInt(1000),
		VendorPrice: decimal.NewFromInt(800),
		Currency:    "USD",
		NTERequests: reqs,
	}
}

func TestApprove(t *testing.T) {
	t.Run("replaces prices", func(t *testing.T) {
		req := sentRequest(t0, 1200, 1500)
		wo := workOrderWith(req)

		patch, approved, err := Approve(wo, req.Key(), actor, t0.Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := patch.Apply(wo)
		if !got.ClientPrice.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("client price must be replaced, got %s", got.ClientPrice)
		}
		if !got.VendorPrice.Equal(decimal.NewFromInt(1200)) {
			t.Fatalf("vendor price must be replaced, got %s", got.VendorPrice)
		}
		if approved.ClientResponse != entities.NTEResponseApproved || approved.ClientApprovedDate == nil {
			t.Fatalf("unexpected approved request: %+v", approved)
		}
		if got.NTERequests[0].ClientResponse != entities.NTEResponseApproved {
			t.Fatalf("stored request not marked approved")
		}
		if wo.NTERequests[0].HasResponse() {
			t.Fatalf("input aggregate must not change")
		}
		if len(got.Activity) != 1 {
			t.Fatalf("expected a ledger entry")
		}
	})

	t.Run("respond once", func(t *testing.T) {
		req := sentRequest(t0, 1200, 1500)
		wo := workOrderWith(req)
		patch, _, err := Approve(wo, req.Key(), actor, t0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := patch.Apply(wo)

		_, _, err = Approve(after, req.Key(), actor, t0.Add(time.Minute))
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Fatalf("expected ErrAlreadyResponded, got %v", err)
		}
		_, _, err = Deny(after, req.Key(), "too late", actor, t0.Add(time.Minute))
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Fatalf("expected ErrAlreadyResponded on deny, got %v", err)
		}
	})

	t.Run("not sent", func(t *testing.T) {
		req := sentRequest(t0, 1, 2)
		req.SentToClient = false
		_, _, err := Approve(workOrderWith(req), req.Key(), actor, t0)
		if !errors.Is(err, ErrNotSentToClient) {
			t.Fatalf("expected ErrNotSentToClient, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, _, err := Approve(workOrderWith(), "2020-01-01T00:00:00Z", actor, t0)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		req := sentRequest(t0, -5, 10)
		_, _, err := Approve(workOrderWith(req), req.Key(), actor, t0)
		if !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestDeny(t *testing.T) {
	t.Run("keeps prices", func(t *testing.T) {
		req := sentRequest(t0, 1200, 1500)
		wo := workOrderWith(req)
		patch, denied, err := Deny(wo, req.Key(), " over budget ", actor, t0.Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.ClientPrice != nil || patch.VendorPrice != nil {
			t.Fatalf("deny must not touch prices")
		}
		got := patch.Apply(wo)
		if !got.ClientPrice.Equal(wo.ClientPrice) {
			t.Fatalf("client price changed")
		}
		if denied.ClientResponse != entities.NTEResponseDenied || denied.ClientDenyReason != "over budget" || denied.ClientDeniedDate == nil {
			t.Fatalf("unexpected denied request: %+v", denied)
		}
	})

	t.Run("reason required", func(t *testing.T) {
		req := sentRequest(t0, 1, 2)
		_, _, err := Deny(workOrderWith(req), req.Key(), "   ", actor, t0)
		if !errors.Is(err, ErrDenyReasonRequired) {
			t.Fatalf("expected ErrDenyReasonRequired, got %v", err)
		}
	})
}

func TestOverview(t *testing.T) {
	approvedAt := t0.Add(2 * time.Hour)
	deniedAt := t0.Add(5 * time.Hour)

	approved := sentRequest(t0, 100, 1100)
	approved.ClientResponse = entities.NTEResponseApproved
	approved.ClientApprovedDate = &approvedAt

	denied := sentRequest(t0.Add(time.Hour), 100, 1300)
	denied.ClientResponse = entities.NTEResponseDenied
	denied.ClientDeniedDate = &deniedAt

	pending := sentRequest(t0.Add(3*time.Hour), 100, 1250)
	draft := sentRequest(t0.Add(4*time.Hour), 100, 9999)
	draft.SentToClient = false

	wo := workOrderWith(approved, denied, pending, draft)
	ov := BuildOverview(wo)

	if len(ov.Pending) != 1 || ov.Pending[0].Key != pending.Key() {
		t.Fatalf("unexpected pending: %+v", ov.Pending)
	}
	if !ov.Pending[0].Increase.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("unexpected increase: %s", ov.Pending[0].Increase)
	}
	if len(ov.History) != 2 || ov.History[0].ClientResponse != entities.NTEResponseDenied {
		t.Fatalf("history must be most recent decision first: %+v", ov.History)
	}
}
