package entities

import (
	"fmt"
	"time"
)

// Priority drives the due date of a work order: dueDate = createdDate + offset.

type Priority string

const (
	PriorityP1 Priority = "P-1"
	PriorityP2 Priority = "P-2"
	PriorityP3 Priority = "P-3"
	PriorityP4 Priority = "P-4"
)

const day = 24 * time.Hour

var priorityOffsets = map[Priority]time.Duration{
	PriorityP1: 1 * day,
	PriorityP2: 3 * day,
	PriorityP3: 7 * day,
	PriorityP4: 14 * day,
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if _, ok := priorityOffsets[p]; !ok {
		return "", fmt.Errorf("unknown priority: %q", s)
	}
	return p, nil
}

func (p Priority) IsValid() bool {
	_, ok := priorityOffsets[p]
	return ok
}

// DueOffset returns how long after creation a work order of this priority is due.
func (p Priority) DueOffset() (time.Duration, bool) {
	d, ok := priorityOffsets[p]
	return d, ok
}

// DueDate computes createdDate + offset(p). Unknown priorities return the zero time.
func (p Priority) DueDate(createdDate time.Time) time.Time {
	d, ok := priorityOffsets[p]
	if !ok {
		return time.Time{}
	}
	return createdDate.Add(d)
}

// NotePriority classifies client notes.
type NotePriority string

const (
	NotePriorityLow    NotePriority = "Low"
	NotePriorityMedium NotePriority = "Medium"
	NotePriorityHigh   NotePriority = "High"
)

func ParseNotePriority(s string) (NotePriority, error) {
	switch NotePriority(s) {
	case NotePriorityLow, NotePriorityMedium, NotePriorityHigh:
		return NotePriority(s), nil
	default:
		return "", fmt.Errorf("unknown note priority: %q", s)
	}
}
