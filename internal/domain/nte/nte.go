// Package nte implements the Not To Exceed renegotiation protocol.
//
// A vendor request becomes pending once it is sent to the client. The client
// answers exactly once; approval replaces the ceiling, denial leaves prices alone.
package nte

import (
	"errors"
	"sort"
	"strings"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound    = errors.New("nte request not found")
	ErrNotSentToClient    = errors.New("nte request has not been sent to the client")
	ErrAlreadyResponded   = errors.New("nte request already has a client response")
	ErrDenyReasonRequired = errors.New("deny reason is required")
	ErrNegativeAmount     = errors.New("nte amounts must not be negative")
)

func lookup(wo entities.WorkOrder, key string) (int, error) {
	idx := wo.FindNTERequest(strings.TrimSpace(key))
	if idx < 0 {
		return -1, ErrRequestNotFound
	}
	req := wo.NTERequests[idx]
	if req.HasResponse() {
		return -1, ErrAlreadyResponded
	}
	if !req.SentToClient {
		return -1, ErrNotSentToClient
	}
	return idx, nil
}

// Approve accepts a pending request: the client price is replaced by the
// requested client amount and the vendor price by the requested amount.
func Approve(wo entities.WorkOrder, key string, actor entities.ActingUser, now time.Time) (entities.WorkOrderPatch, entities.NTERequest, error) {
	idx, err := lookup(wo, key)
	if err != nil {
		return entities.WorkOrderPatch{}, entities.NTERequest{}, err
	}
	next := wo.Clone()
	req := next.NTERequests[idx]
	if req.Amount.IsNegative() || req.ClientAmount.IsNegative() {
		return entities.WorkOrderPatch{}, entities.NTERequest{}, ErrNegativeAmount
	}

	now = now.UTC()
	req.ClientResponse = entities.NTEResponseApproved
	req.ClientApprovedDate = &now
	next.NTERequests[idx] = req

	clientPrice := req.ClientAmount
	vendorPrice := req.Amount
	activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(),
		ledger.NTEApprovedAction(wo.ClientPrice, clientPrice, wo.Currency)))

	return entities.WorkOrderPatch{
		ClientPrice: &clientPrice,
		VendorPrice: &vendorPrice,
		NTERequests: &next.NTERequests,
		Activity:    &activity,
	}, req, nil
}

// Deny rejects a pending request. Prices stay as they are.
func Deny(wo entities.WorkOrder, key, reason string, actor entities.ActingUser, now time.Time) (entities.WorkOrderPatch, entities.NTERequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.WorkOrderPatch{}, entities.NTERequest{}, ErrDenyReasonRequired
	}
	idx, err := lookup(wo, key)
	if err != nil {
		return entities.WorkOrderPatch{}, entities.NTERequest{}, err
	}

	now = now.UTC()
	next := wo.Clone()
	req := next.NTERequests[idx]
	req.ClientResponse = entities.NTEResponseDenied
	req.ClientDeniedDate = &now
	req.ClientDenyReason = reason
	next.NTERequests[idx] = req

	activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(),
		ledger.NTEDeniedAction(req.ClientAmount, wo.Currency, reason)))

	return entities.WorkOrderPatch{
		NTERequests: &next.NTERequests,
		Activity:    &activity,
	}, req, nil
}

// Increase is the display delta of a request against the current ceiling.
// It may be negative; the engine does not require requests to raise the ceiling.
func Increase(req entities.NTERequest, currentClientPrice decimal.Decimal) decimal.Decimal {
	return req.ClientAmount.Sub(currentClientPrice)
}

// Pending lists requests waiting for a client decision, oldest first.
func Pending(wo entities.WorkOrder) []entities.NTERequest {
	var out []entities.NTERequest
	for _, r := range wo.NTERequests {
		if r.IsPending() {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// History lists answered requests, most recent decision first.
func History(wo entities.WorkOrder) []entities.NTERequest {
	var out []entities.NTERequest
	for _, r := range wo.NTERequests {
		if r.HasResponse() {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RespondedAt().After(out[j].RespondedAt()) })
	return out
}

// PendingItem pairs a pending request with its display increase.
type PendingItem struct {
	Request  entities.NTERequest `json:"request"`
	Key      string              `json:"key"`
	Increase decimal.Decimal     `json:"increase"`
}

// Overview is the read-only projection shown to the client.
type Overview struct {
	WorkOrderID string                `json:"work_order_id"`
	ClientPrice decimal.Decimal       `json:"client_price"`
	Currency    string                `json:"currency"`
	Pending     []PendingItem         `json:"pending"`
	History     []entities.NTERequest `json:"history"`
}

func BuildOverview(wo entities.WorkOrder) Overview {
	ov := Overview{
		WorkOrderID: wo.ID,
		ClientPrice: wo.ClientPrice,
		Currency:    wo.Currency,
		Pending:     []PendingItem{},
		History:     History(wo),
	}
	for _, r := range Pending(wo) {
		ov.Pending = append(ov.Pending, PendingItem{Request: r, Key: r.Key(), Increase: Increase(r, wo.ClientPrice)})
	}
	if ov.History == nil {
		ov.History = []entities.NTERequest{}
	}
	return ov
}
