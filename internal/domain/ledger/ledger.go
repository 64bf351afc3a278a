// Package ledger builds the append-only activity trail of a work order.
//
// The trail is stored newest-first. Entries are never edited; every mutation
// produces a fresh slice so the aggregate that was read stays untouched.
package ledger

import (
	"fmt"
	"time"

	"workorder_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func NewEntry(now time.Time, user, action string) entities.ActivityEntry {
	return entities.ActivityEntry{Date: now.UTC(), User: user, Action: action}
}

// Prepend returns a new trail with entry at index 0.
func Prepend(activity []entities.ActivityEntry, entry entities.ActivityEntry) []entities.ActivityEntry {
	out := make([]entities.ActivityEntry, 0, len(activity)+1)
	out = append(out, entry)
	return append(out, activity...)
}

// Latest returns the most recent entry, if any.
func Latest(activity []entities.ActivityEntry) (entities.ActivityEntry, bool) {
	if len(activity) == 0 {
		return entities.ActivityEntry{}, false
	}
	return activity[0], true
}

func SubmittedAction(status entities.WorkOrderStatus) string {
	return fmt.Sprintf("Work order submitted (%s)", status)
}

func CancelledAction(reason string) string {
	return fmt.Sprintf("Work order cancelled. Reason: %s", reason)
}

func ReopenedAction(reason string) string {
	return fmt.Sprintf("Work order reopened. Reason: %s", reason)
}

func PriorityChangedAction(from, to entities.Priority) string {
	return fmt.Sprintf("Priority changed from %s to %s", from, to)
}

func NTEApprovedAction(previous, approved decimal.Decimal, currency string) string {
	return fmt.Sprintf("NTE increase approved: %s -> %s %s (+%s)",
		previous.StringFixed(2), approved.StringFixed(2), currency, approved.Sub(previous).StringFixed(2))
}

func NTEDeniedAction(requested decimal.Decimal, currency, reason string) string {
	return fmt.Sprintf("NTE increase to %s %s denied. Reason: %s", requested.StringFixed(2), currency, reason)
}

func NoteAddedAction(priority entities.NotePriority) string {
	return fmt.Sprintf("Note added (%s priority)", priority)
}

func ImageAddedAction(fileName string) string {
	return fmt.Sprintf("Image uploaded: %s", fileName)
}
