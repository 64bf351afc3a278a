package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NTEResponse is the client's decision on a cost-ceiling increase request.
// The empty value means the client has not answered yet.

type NTEResponse string

const (
	NTEResponseNone     NTEResponse = ""
	NTEResponseApproved NTEResponse = "Approved"
	NTEResponseDenied   NTEResponse = "Denied"
)

// NTERequest is a vendor request to raise the Not To Exceed ceiling of a work order.
//
// Identity:
//   - Date is the unique key of a request within its work order (see Key()).
//
// Amounts:
//   - Amount is the vendor price the vendor asks for.
//   - ClientAmount is the new client-facing ceiling (replaces WorkOrder.ClientPrice on approval).
type NTERequest struct {
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	ClientAmount     decimal.Decimal `json:"client_amount"`
	CustomReason     string          `json:"custom_reason,omitempty"`
	Attachments      []string        `json:"attachments,omitempty"`
	SentToClient     bool            `json:"sent_to_client"`
	SentToClientDate *time.Time      `json:"sent_to_client_date,omitempty"`
	SentToClientBy   string          `json:"sent_to_client_by,omitempty"`

	ClientResponse     NTEResponse `json:"client_response,omitempty"`
	ClientApprovedDate *time.Time  `json:"client_approved_date,omitempty"`
	ClientDeniedDate   *time.Time  `json:"client_denied_date,omitempty"`
	ClientDenyReason   string      `json:"client_deny_reason,omitempty"`
}

// Key returns the request's unique key inside its work order.
func (r NTERequest) Key() string {
	return NTEKey(r.Date)
}

// NTEKey formats a request date the way request keys are addressed.
func NTEKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (r NTERequest) HasResponse() bool {
	return r.ClientResponse != NTEResponseNone
}

// IsPending reports whether the request waits for a client decision.
func (r NTERequest) IsPending() bool {
	return r.SentToClient && !r.HasResponse()
}

// RespondedAt returns the approval or denial date, whichever is set.
func (r NTERequest) RespondedAt() time.Time {
	switch {
	case r.ClientApprovedDate != nil:
		return *r.ClientApprovedDate
	case r.ClientDeniedDate != nil:
		return *r.ClientDeniedDate
	default:
		return time.Time{}
	}
}

func (r NTERequest) clone() NTERequest {
	out := r
	out.Attachments = cloneStrings(r.Attachments)
	out.SentToClientDate = cloneTime(r.SentToClientDate)
	out.ClientApprovedDate = cloneTime(r.ClientApprovedDate)
	out.ClientDeniedDate = cloneTime(r.ClientDeniedDate)
	return out
}
