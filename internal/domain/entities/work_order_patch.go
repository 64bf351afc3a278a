package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderPatch is a partial update of a WorkOrder.
//
// Nil fields are left untouched by the store. Slice fields are replaced as a
// whole, which is only safe because every patch carries ExpectedVersion and the
// store rejects it when the stored version moved on.
type WorkOrderPatch struct {
	ExpectedVersion int64

	Status      *WorkOrderStatus
	Priority    *Priority
	DueDate     *time.Time
	ClientPrice *decimal.Decimal
	VendorPrice *decimal.Decimal

	NTERequests *[]NTERequest
	ClientNotes *[]ClientNote
	Activity    *[]ActivityEntry
	Images      *[]string

	CancelDetails      *CancelDetails
	ClearCancelDetails bool
	ReopenDetails      *ReopenDetails
	ClearReopenDetails bool
}

// IsEmpty reports whether the patch changes nothing.
func (p WorkOrderPatch) IsEmpty() bool {
	return p.Status == nil &&
		p.Priority == nil &&
		p.DueDate == nil &&
		p.ClientPrice == nil &&
		p.VendorPrice == nil &&
		p.NTERequests == nil &&
		p.ClientNotes == nil &&
		p.Activity == nil &&
		p.Images == nil &&
		p.CancelDetails == nil &&
		!p.ClearCancelDetails &&
		p.ReopenDetails == nil &&
		!p.ClearReopenDetails
}

// Apply merges the patch into a copy of w. Version bookkeeping is left to the store.
func (p WorkOrderPatch) Apply(w WorkOrder) WorkOrder {
	out := w.Clone()
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.ClientPrice != nil {
		out.ClientPrice = *p.ClientPrice
	}
	if p.VendorPrice != nil {
		out.VendorPrice = *p.VendorPrice
	}
	if p.NTERequests != nil {
		out.NTERequests = WorkOrder{NTERequests: *p.NTERequests}.Clone().NTERequests
	}
	if p.ClientNotes != nil {
		out.ClientNotes = append([]ClientNote{}, (*p.ClientNotes)...)
	}
	if p.Activity != nil {
		out.Activity = append([]ActivityEntry{}, (*p.Activity)...)
	}
	if p.Images != nil {
		out.Images = append([]string{}, (*p.Images)...)
	}
	if p.ClearCancelDetails {
		out.CancelDetails = nil
	}
	if p.CancelDetails != nil {
		cd := *p.CancelDetails
		out.CancelDetails = &cd
	}
	if p.ClearReopenDetails {
		out.ReopenDetails = nil
	}
	if p.ReopenDetails != nil {
		rd := *p.ReopenDetails
		out.ReopenDetails = &rd
	}
	return out
}
