package entities

import "fmt"

// WorkOrderStatus is the lifecycle status of a work order.
//
// Only the statuses reachable from the client-facing surface are modelled here.
// Vendor/back-office statuses never reach this service.

type WorkOrderStatus string

const (
	StatusNew              WorkOrderStatus = "New"
	StatusRequiresProposal WorkOrderStatus = "RequiresProposal"
	StatusWaitingApproval  WorkOrderStatus = "WaitingApproval"
	StatusProposalApproved WorkOrderStatus = "ProposalApproved"
	StatusAccepted         WorkOrderStatus = "Accepted"
	StatusScheduled        WorkOrderStatus = "Scheduled"
	StatusInProgress       WorkOrderStatus = "InProgress"
	StatusCompleted        WorkOrderStatus = "Completed"
	StatusCancelled        WorkOrderStatus = "Cancelled"
	StatusReopened         WorkOrderStatus = "Reopened"
)

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []WorkOrderStatus {
	return []WorkOrderStatus{
		StatusNew,
		StatusRequiresProposal,
		StatusWaitingApproval,
		StatusProposalApproved,
		StatusAccepted,
		StatusScheduled,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusReopened,
	}
}

func ParseWorkOrderStatus(s string) (WorkOrderStatus, error) {
	for _, st := range AllStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown work order status: %q", s)
}

func (s WorkOrderStatus) IsValid() bool {
	_, err := ParseWorkOrderStatus(string(s))
	return err == nil
}

// IsClosed reports whether the status closes the work order for edits.
func (s WorkOrderStatus) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}
