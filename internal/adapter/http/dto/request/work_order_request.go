package request

import (
	"strings"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest is the submission payload. ClientRef is only honored
// for internal admins; everyone else submits for their own client.
type CreateWorkOrderRequest struct {
	ClientRef        string          `json:"client_ref"`
	SiteRef          string          `json:"site_ref" binding:"required"`
	ServiceType      string          `json:"service_type" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	Priority         string          `json:"priority" binding:"required,oneof=P-1 P-2 P-3 P-4"`
	ClientPrice      decimal.Decimal `json:"client_price"`
	Currency         string          `json:"currency" binding:"omitempty,len=3,alpha"`
	RequiresProposal bool            `json:"requires_proposal"`
}

func (r CreateWorkOrderRequest) ToCommand() usecase.CreateWorkOrderCommand {
	return usecase.CreateWorkOrderCommand{
		ClientRef:        strings.TrimSpace(r.ClientRef),
		SiteRef:          strings.TrimSpace(r.SiteRef),
		ServiceType:      strings.TrimSpace(r.ServiceType),
		Description:      strings.TrimSpace(r.Description),
		Priority:         entities.Priority(r.Priority),
		ClientPrice:      r.ClientPrice,
		Currency:         strings.ToUpper(strings.TrimSpace(r.Currency)),
		RequiresProposal: r.RequiresProposal,
	}
}

// ReasonRequest is used by cancel, reopen and NTE deny.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r ReasonRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=P-1 P-2 P-3 P-4"`
}

type AddNoteRequest struct {
	Body     string `json:"body" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=Low Medium High"`
}
