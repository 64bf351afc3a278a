package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrder is the aggregate persisted by the engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_ref-index): client_ref
//
// Invariants:
//   - CancelDetails is set iff Status == Cancelled.
//   - ReopenDetails is set iff Status == Reopened.
//   - Version grows by one on every successful update; writers must present the
//     version they read (optimistic concurrency).
//
// Monetary representation:
//   - ClientPrice is the NTE ceiling the client agreed to.
//   - VendorPrice is what the vendor bills against it.
type WorkOrder struct {
	ID          string          `json:"id"`
	ClientRef   string          `json:"client_ref"`
	SiteRef     string          `json:"site_ref"`
	ServiceType string          `json:"service_type"`
	Description string          `json:"description"`
	Priority    Priority        `json:"priority"`
	Status      WorkOrderStatus `json:"status"`
	CreatedDate time.Time       `json:"created_date"`
	DueDate     time.Time       `json:"due_date"`
	ClientPrice decimal.Decimal `json:"client_price"`
	VendorPrice decimal.Decimal `json:"vendor_price"`
	Currency    string          `json:"currency"`

	NTERequests []NTERequest    `json:"nte_requests"`
	ClientNotes []ClientNote    `json:"client_notes"`
	Activity    []ActivityEntry `json:"activity"`
	Images      []string        `json:"images"`

	CancelDetails *CancelDetails `json:"cancel_details,omitempty"`
	ReopenDetails *ReopenDetails `json:"reopen_details,omitempty"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can compute patches without aliasing
// the slices of the aggregate they read.
func (w WorkOrder) Clone() WorkOrder {
	out := w
	if w.NTERequests != nil {
		out.NTERequests = make([]NTERequest, len(w.NTERequests))
		for i, r := range w.NTERequests {
			out.NTERequests[i] = r.clone()
		}
	}
	if w.ClientNotes != nil {
		out.ClientNotes = append([]ClientNote{}, w.ClientNotes...)
	}
	if w.Activity != nil {
		out.Activity = append([]ActivityEntry{}, w.Activity...)
	}
	out.Images = cloneStrings(w.Images)
	if w.CancelDetails != nil {
		cd := *w.CancelDetails
		out.CancelDetails = &cd
	}
	if w.ReopenDetails != nil {
		rd := *w.ReopenDetails
		out.ReopenDetails = &rd
	}
	return out
}

// FindNTERequest returns the index of the request with the given key, or -1.
func (w WorkOrder) FindNTERequest(key string) int {
	for i, r := range w.NTERequests {
		if r.Key() == key {
			return i
		}
	}
	return -1
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
