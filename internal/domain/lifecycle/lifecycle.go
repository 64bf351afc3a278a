// Package lifecycle is the work order state machine.
//
// All status changes are validated against a single transition table and are
// returned as patches; nothing here touches storage.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/ledger"
	"workorder_engine/internal/domain/permissions"
)

var (
	ErrReasonRequired  = errors.New("reason is required")
	ErrInvalidPriority = errors.New("invalid priority")
)

type Action string

const (
	ActionCancel         Action = "cancel"
	ActionReopen         Action = "reopen"
	ActionChangePriority Action = "change_priority"
)

// TransitionError reports an action that the current status does not allow.
type TransitionError struct {
	Action Action
	From   entities.WorkOrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a work order in status %s", e.Action, e.From)
}

type rule struct {
	from map[entities.WorkOrderStatus]bool
	// to is empty for actions that keep the status.
	to entities.WorkOrderStatus
}

func statusSet(statuses ...entities.WorkOrderStatus) map[entities.WorkOrderStatus]bool {
	m := make(map[entities.WorkOrderStatus]bool, len(statuses))
	for _, s := range statuses {
		m[s] = true
	}
	return m
}

func allExcept(excluded ...entities.WorkOrderStatus) map[entities.WorkOrderStatus]bool {
	skip := statusSet(excluded...)
	m := make(map[entities.WorkOrderStatus]bool)
	for _, s := range entities.AllStatuses() {
		if !skip[s] {
			m[s] = true
		}
	}
	return m
}

var transitions = map[Action]rule{
	ActionCancel: {
		from: allExcept(entities.StatusCompleted, entities.StatusCancelled),
		to:   entities.StatusCancelled,
	},
	ActionReopen: {
		from: statusSet(entities.StatusCompleted),
		to:   entities.StatusReopened,
	},
	ActionChangePriority: {
		from: allExcept(entities.StatusCompleted, entities.StatusCancelled),
	},
}

// CanApply reports whether action is allowed from status.
func CanApply(action Action, from entities.WorkOrderStatus) bool {
	r, ok := transitions[action]
	if !ok {
		return false
	}
	return r.from[from]
}

// Target returns the status an action leads to, or from itself when the
// action keeps the status.
func Target(action Action, from entities.WorkOrderStatus) entities.WorkOrderStatus {
	r, ok := transitions[action]
	if !ok || r.to == "" {
		return from
	}
	return r.to
}

// AllowedActions lists the actions available from status, in table order.
func AllowedActions(from entities.WorkOrderStatus) []Action {
	var out []Action
	for _, a := range []Action{ActionCancel, ActionReopen, ActionChangePriority} {
		if CanApply(a, from) {
			out = append(out, a)
		}
	}
	return out
}

var actionPermissions = map[Action]permissions.Permission{
	ActionCancel:         permissions.WorkOrderCancel,
	ActionReopen:         permissions.WorkOrderReopen,
	ActionChangePriority: permissions.WorkOrderChangePriority,
}

// ActionsFor narrows AllowedActions to what actor's role may perform.
func ActionsFor(from entities.WorkOrderStatus, actor entities.ActingUser) []Action {
	var out []Action
	for _, a := range AllowedActions(from) {
		if actor.Can(actionPermissions[a]) {
			out = append(out, a)
		}
	}
	return out
}

func check(action Action, wo entities.WorkOrder) error {
	if !CanApply(action, wo.Status) {
		return &TransitionError{Action: action, From: wo.Status}
	}
	return nil
}

// Policy toggles the audit side effects whose asymmetry is kept for compatibility.
type Policy struct {
	LedgerOnPriorityChange bool
}

// Cancel moves the work order to Cancelled and records why.
func Cancel(wo entities.WorkOrder, reason string, actor entities.ActingUser, now time.Time) (entities.WorkOrderPatch, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.WorkOrderPatch{}, ErrReasonRequired
	}
	if err := check(ActionCancel, wo); err != nil {
		return entities.WorkOrderPatch{}, err
	}

	now = now.UTC()
	status := Target(ActionCancel, wo.Status)
	activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(), ledger.CancelledAction(reason)))
	return entities.WorkOrderPatch{
		Status:             &status,
		CancelDetails:      &entities.CancelDetails{Date: now, Reason: reason},
		ClearReopenDetails: wo.ReopenDetails != nil,
		Activity:           &activity,
	}, nil
}

// Reopen brings a Completed work order back as Reopened.
func Reopen(wo entities.WorkOrder, reason string, actor entities.ActingUser, now time.Time) (entities.WorkOrderPatch, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.WorkOrderPatch{}, ErrReasonRequired
	}
	if err := check(ActionReopen, wo); err != nil {
		return entities.WorkOrderPatch{}, err
	}

	now = now.UTC()
	status := Target(ActionReopen, wo.Status)
	activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(), ledger.ReopenedAction(reason)))
	return entities.WorkOrderPatch{
		Status:             &status,
		ReopenDetails:      &entities.ReopenDetails{Date: now, User: actor.DisplayName(), Reason: reason},
		ClearCancelDetails: wo.CancelDetails != nil,
		Activity:           &activity,
	}, nil
}

// ChangePriority sets a new priority and recomputes the due date from the
// creation date.
func ChangePriority(wo entities.WorkOrder, priority entities.Priority, actor entities.ActingUser, now time.Time, policy Policy) (entities.WorkOrderPatch, error) {
	if !priority.IsValid() {
		return entities.WorkOrderPatch{}, ErrInvalidPriority
	}
	if err := check(ActionChangePriority, wo); err != nil {
		return entities.WorkOrderPatch{}, err
	}

	due := priority.DueDate(wo.CreatedDate)
	patch := entities.WorkOrderPatch{
		Priority: &priority,
		DueDate:  &due,
	}
	if policy.LedgerOnPriorityChange {
		activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(), ledger.PriorityChangedAction(wo.Priority, priority)))
		patch.Activity = &activity
	}
	return patch, nil
}
