package lifecycle

import (
	"errors"
	"testing"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/permissions"
)

var (
	t0    = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)
	actor = entities.ActingUser{Email: "ops@client.test", Name: "Ops Manager", Role: permissions.RoleExternalAdmin}
)

func newWorkOrder(status entities.WorkOrderStatus) entities.WorkOrder {
	return entities.WorkOrder{
		ID:          "NFC-1",
		Status:      status,
		Priority:    entities.PriorityP3,
		CreatedDate: t0,
		DueDate:     entities.PriorityP3.DueDate(t0),
	}
}

func TestTransitionTable(t *testing.T) {
	for _, st := range entities.AllStatuses() {
		wantCancel := st != entities.StatusCompleted && st != entities.StatusCancelled
		if got := CanApply(ActionCancel, st); got != wantCancel {
			t.Fatalf("cancel from %s: got %v want %v", st, got, wantCancel)
		}
		wantReopen := st == entities.StatusCompleted
		if got := CanApply(ActionReopen, st); got != wantReopen {
			t.Fatalf("reopen from %s: got %v want %v", st, got, wantReopen)
		}
		if got := CanApply(ActionChangePriority, st); got != wantCancel {
			t.Fatalf("priority change from %s: got %v want %v", st, got, wantCancel)
		}
	}
	if CanApply(Action("delete"), entities.StatusNew) {
		t.Fatalf("unknown actions must be refused")
	}
	if got := AllowedActions(entities.StatusCancelled); len(got) != 0 {
		t.Fatalf("cancelled is terminal, got %v", got)
	}
}

func TestActionsFor(t *testing.T) {
	cases := []struct {
		name   string
		status entities.WorkOrderStatus
		role   permissions.Role
		want   []Action
	}{
		{"employee sees nothing on open order", entities.StatusNew, permissions.RoleEmployee, nil},
		{"external admin on open order", entities.StatusInProgress, permissions.RoleExternalAdmin, []Action{ActionCancel, ActionChangePriority}},
		{"internal admin on completed order", entities.StatusCompleted, permissions.RoleInternalAdmin, []Action{ActionReopen}},
		{"unknown role", entities.StatusNew, permissions.Role("Guest"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ActionsFor(tc.status, entities.ActingUser{Email: "x@client.test", Role: tc.role})
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}

func TestCancel(t *testing.T) {
	t.Run("blank reason", func(t *testing.T) {
		_, err := Cancel(newWorkOrder(entities.StatusNew), "  ", actor, t0)
		if !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("completed is refused", func(t *testing.T) {
		_, err := Cancel(newWorkOrder(entities.StatusCompleted), "late", actor, t0)
		var te *TransitionError
		if !errors.As(err, &te) || te.From != entities.StatusCompleted || te.Action != ActionCancel {
			t.Fatalf("expected transition error, got %v", err)
		}
	})

	t.Run("already cancelled is refused", func(t *testing.T) {
		_, err := Cancel(newWorkOrder(entities.StatusCancelled), "again", actor, t0)
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected transition error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		wo := newWorkOrder(entities.StatusScheduled)
		now := t0.Add(time.Hour)
		patch, err := Cancel(wo, " duplicate order ", actor, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := patch.Apply(wo)
		if got.Status != entities.StatusCancelled {
			t.Fatalf("expected Cancelled, got %s", got.Status)
		}
		if got.CancelDetails == nil || got.CancelDetails.Reason != "duplicate order" || !got.CancelDetails.Date.Equal(now) {
			t.Fatalf("unexpected cancel details: %+v", got.CancelDetails)
		}
		if len(got.Activity) != 1 || got.Activity[0].User != "Ops Manager" {
			t.Fatalf("expected one ledger entry, got %+v", got.Activity)
		}
		if len(wo.Activity) != 0 {
			t.Fatalf("input aggregate must not change")
		}
	})

	t.Run("cancelling a reopened order drops reopen details", func(t *testing.T) {
		wo := newWorkOrder(entities.StatusReopened)
		wo.ReopenDetails = &entities.ReopenDetails{Date: t0, User: "x", Reason: "y"}
		patch, err := Cancel(wo, "no longer needed", actor, t0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := patch.Apply(wo)
		if got.ReopenDetails != nil || got.CancelDetails == nil {
			t.Fatalf("details invariant broken: %+v", got)
		}
	})
}

func TestReopen(t *testing.T) {
	t.Run("new is refused", func(t *testing.T) {
		_, err := Reopen(newWorkOrder(entities.StatusNew), "wrong", actor, t0)
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected transition error, got %v", err)
		}
	})

	t.Run("cancelled is refused", func(t *testing.T) {
		_, err := Reopen(newWorkOrder(entities.StatusCancelled), "wrong", actor, t0)
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected transition error, got %v", err)
		}
	})

	t.Run("blank reason", func(t *testing.T) {
		_, err := Reopen(newWorkOrder(entities.StatusCompleted), "", actor, t0)
		if !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		wo := newWorkOrder(entities.StatusCompleted)
		patch, err := Reopen(wo, "leak is back", actor, t0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := patch.Apply(wo)
		if got.Status != entities.StatusReopened {
			t.Fatalf("expected Reopened, got %s", got.Status)
		}
		if got.ReopenDetails == nil || got.ReopenDetails.Reason != "leak is back" || got.ReopenDetails.User != "Ops Manager" {
			t.Fatalf("unexpected reopen details: %+v", got.ReopenDetails)
		}
		if len(got.Activity) != 1 {
			t.Fatalf("expected a ledger entry")
		}
	})
}

func TestChangePriority(t *testing.T) {
	cases := []struct {
		priority entities.Priority
		offset   time.Duration
	}{
		{entities.PriorityP1, 24 * time.Hour},
		{entities.PriorityP2, 3 * 24 * time.Hour},
		{entities.PriorityP3, 7 * 24 * time.Hour},
		{entities.PriorityP4, 14 * 24 * time.Hour},
	}
	for _, tc := range cases {
		t.Run(string(tc.priority), func(t *testing.T) {
			wo := newWorkOrder(entities.StatusInProgress)
			patch, err := ChangePriority(wo, tc.priority, actor, t0.Add(48*time.Hour), Policy{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := patch.Apply(wo)
			if got.Priority != tc.priority || !got.DueDate.Equal(t0.Add(tc.offset)) {
				t.Fatalf("unexpected priority/due date: %s %s", got.Priority, got.DueDate)
			}
			if got.Status != entities.StatusInProgress {
				t.Fatalf("status must not change")
			}
			if patch.Activity != nil {
				t.Fatalf("no ledger entry expected by default")
			}
		})
	}

	t.Run("ledger when enabled", func(t *testing.T) {
		wo := newWorkOrder(entities.StatusNew)
		patch, err := ChangePriority(wo, entities.PriorityP1, actor, t0, Policy{LedgerOnPriorityChange: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Activity == nil || len(*patch.Activity) != 1 {
			t.Fatalf("expected a ledger entry")
		}
	})

	t.Run("closed orders refuse", func(t *testing.T) {
		for _, st := range []entities.WorkOrderStatus{entities.StatusCompleted, entities.StatusCancelled} {
			_, err := ChangePriority(newWorkOrder(st), entities.PriorityP1, actor, t0, Policy{})
			var te *TransitionError
			if !errors.As(err, &te) {
				t.Fatalf("%s: expected transition error, got %v", st, err)
			}
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := ChangePriority(newWorkOrder(entities.StatusNew), entities.Priority("P-9"), actor, t0, Policy{})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})
}
