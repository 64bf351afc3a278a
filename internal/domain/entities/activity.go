package entities

import "time"

// ActivityEntry is one immutable line of a work order's audit trail.
// WorkOrder.Activity is ordered newest-first.
type ActivityEntry struct {
	Date   time.Time `json:"date"`
	User   string    `json:"user"`
	Action string    `json:"action"`
}

// ClientNote is a free-form note left by the client on a work order.
type ClientNote struct {
	Body     string       `json:"body"`
	User     string       `json:"user"`
	Date     time.Time    `json:"date"`
	Company  string       `json:"company,omitempty"`
	Priority NotePriority `json:"priority"`
}

type CancelDetails struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

type ReopenDetails struct {
	Date   time.Time `json:"date"`
	User   string    `json:"user"`
	Reason string    `json:"reason"`
}
