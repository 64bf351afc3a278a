package response

import (
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/lifecycle"
	"workorder_engine/internal/domain/nte"
	"workorder_engine/internal/usecase"

	"github.com/shopspring/decimal"
)

type WorkOrderResponse struct {
	ID             string                   `json:"id"`
	ClientRef      string                   `json:"client_ref"`
	SiteRef        string                   `json:"site_ref"`
	ServiceType    string                   `json:"service_type"`
	Description    string                   `json:"description"`
	Priority       string                   `json:"priority"`
	Status         string                   `json:"status"`
	AllowedActions []string                 `json:"allowed_actions"`
	CreatedDate    time.Time                `json:"created_date"`
	DueDate        time.Time                `json:"due_date"`
	ClientPrice    decimal.Decimal          `json:"client_price"`
	VendorPrice    decimal.Decimal          `json:"vendor_price"`
	Currency       string                   `json:"currency"`
	NTERequests    []NTERequestResponse     `json:"nte_requests"`
	ClientNotes    []entities.ClientNote    `json:"client_notes"`
	Activity       []entities.ActivityEntry `json:"activity"`
	Images         []string                 `json:"images"`
	CancelDetails  *entities.CancelDetails  `json:"cancel_details,omitempty"`
	ReopenDetails  *entities.ReopenDetails  `json:"reopen_details,omitempty"`
	Version        int64                    `json:"version"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NTERequestResponse adds the addressable key to a request.
type NTERequestResponse struct {
	Key string `json:"key"`
	entities.NTERequest
}

type MutationResponse struct {
	WorkOrder          WorkOrderResponse `json:"work_order"`
	NotificationFailed bool              `json:"notification_failed"`
	Warnings           []string          `json:"warnings,omitempty"`
}

type NTEOverviewResponse struct {
	WorkOrderID string               `json:"work_order_id"`
	ClientPrice decimal.Decimal      `json:"client_price"`
	Currency    string               `json:"currency"`
	Pending     []NTEPendingResponse `json:"pending"`
	History     []NTERequestResponse `json:"history"`
}

type NTEPendingResponse struct {
	NTERequestResponse
	Increase decimal.Decimal `json:"increase"`
}

// FromWorkOrder lists in allowed_actions only the transitions the status
// permits and the actor's role may perform.
func FromWorkOrder(wo entities.WorkOrder, actor entities.ActingUser) WorkOrderResponse {
	actions := lifecycle.ActionsFor(wo.Status, actor)
	allowed := make([]string, 0, len(actions))
	for _, a := range actions {
		allowed = append(allowed, string(a))
	}

	return WorkOrderResponse{
		ID:             wo.ID,
		ClientRef:      wo.ClientRef,
		SiteRef:        wo.SiteRef,
		ServiceType:    wo.ServiceType,
		Description:    wo.Description,
		Priority:       string(wo.Priority),
		Status:         string(wo.Status),
		AllowedActions: allowed,
		CreatedDate:    wo.CreatedDate,
		DueDate:        wo.DueDate,
		ClientPrice:    wo.ClientPrice,
		VendorPrice:    wo.VendorPrice,
		Currency:       wo.Currency,
		NTERequests:    fromNTERequests(wo.NTERequests),
		ClientNotes:    nonNil(wo.ClientNotes),
		Activity:       nonNil(wo.Activity),
		Images:         nonNil(wo.Images),
		CancelDetails:  wo.CancelDetails,
		ReopenDetails:  wo.ReopenDetails,
		Version:        wo.Version,
		UpdatedAt:      wo.UpdatedAt,
	}
}

func FromWorkOrders(items []entities.WorkOrder, actor entities.ActingUser) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(items))
	for _, wo := range items {
		out = append(out, FromWorkOrder(wo, actor))
	}
	return out
}

func FromMutationResult(r usecase.MutationResult, actor entities.ActingUser) MutationResponse {
	return MutationResponse{
		WorkOrder:          FromWorkOrder(r.WorkOrder, actor),
		NotificationFailed: r.NotificationFailed,
		Warnings:           r.Warnings,
	}
}

func FromNTEOverview(ov nte.Overview) NTEOverviewResponse {
	pending := make([]NTEPendingResponse, 0, len(ov.Pending))
	for _, p := range ov.Pending {
		pending = append(pending, NTEPendingResponse{
			NTERequestResponse: NTERequestResponse{Key: p.Key, NTERequest: p.Request},
			Increase:           p.Increase,
		})
	}
	return NTEOverviewResponse{
		WorkOrderID: ov.WorkOrderID,
		ClientPrice: ov.ClientPrice,
		Currency:    ov.Currency,
		Pending:     pending,
		History:     fromNTERequests(ov.History),
	}
}

func fromNTERequests(reqs []entities.NTERequest) []NTERequestResponse {
	out := make([]NTERequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NTERequestResponse{Key: r.Key(), NTERequest: r})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
