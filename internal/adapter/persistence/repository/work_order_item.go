package repository

import (
	"time"

	"workorder_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type nteRequestItem struct {
	Date               string   `dynamodbav:"date"`
	Amount             string   `dynamodbav:"amount"`
	ClientAmount       string   `dynamodbav:"client_amount"`
	CustomReason       string   `dynamodbav:"custom_reason,omitempty"`
	Attachments        []string `dynamodbav:"attachments,omitempty"`
	SentToClient       bool     `dynamodbav:"sent_to_client"`
	SentToClientDate   string   `dynamodbav:"sent_to_client_date,omitempty"`
	SentToClientBy     string   `dynamodbav:"sent_to_client_by,omitempty"`
	ClientResponse     string   `dynamodbav:"client_response,omitempty"`
	ClientApprovedDate string   `dynamodbav:"client_approved_date,omitempty"`
	ClientDeniedDate   string   `dynamodbav:"client_denied_date,omitempty"`
	ClientDenyReason   string   `dynamodbav:"client_deny_reason,omitempty"`
}

type clientNoteItem struct {
	Body     string `dynamodbav:"body"`
	User     string `dynamodbav:"user"`
	Date     string `dynamodbav:"date"`
	Company  string `dynamodbav:"company,omitempty"`
	Priority string `dynamodbav:"priority"`
}

type activityItem struct {
	Date   string `dynamodbav:"date"`
	User   string `dynamodbav:"user"`
	Action string `dynamodbav:"action"`
}

type cancelDetailsItem struct {
	Date   string `dynamodbav:"date"`
	Reason string `dynamodbav:"reason"`
}

type reopenDetailsItem struct {
	Date   string `dynamodbav:"date"`
	User   string `dynamodbav:"user"`
	Reason string `dynamodbav:"reason"`
}

type workOrderItem struct {
	ID          string `dynamodbav:"id"`
	ClientRef   string `dynamodbav:"client_ref"`
	SiteRef     string `dynamodbav:"site_ref"`
	ServiceType string `dynamodbav:"service_type"`
	Description string `dynamodbav:"description"`
	Priority    string `dynamodbav:"priority"`
	Status      string `dynamodbav:"status"`
	CreatedDate string `dynamodbav:"created_date"`
	DueDate     string `dynamodbav:"due_date"`
	ClientPrice string `dynamodbav:"client_price"`
	VendorPrice string `dynamodbav:"vendor_price"`
	Currency    string `dynamodbav:"currency"`

	NTERequests []nteRequestItem `dynamodbav:"nte_requests"`
	ClientNotes []clientNoteItem `dynamodbav:"client_notes"`
	Activity    []activityItem   `dynamodbav:"activity"`
	Images      []string         `dynamodbav:"images"`

	CancelDetails *cancelDetailsItem `dynamodbav:"cancel_details,omitempty"`
	ReopenDetails *reopenDetailsItem `dynamodbav:"reopen_details,omitempty"`

	Version   int64  `dynamodbav:"version"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toNTERequestItems(in []entities.NTERequest) []nteRequestItem {
	out := make([]nteRequestItem, 0, len(in))
	for _, r := range in {
		out = append(out, nteRequestItem{
			Date:               formatTime(r.Date),
			Amount:             r.Amount.String(),
			ClientAmount:       r.ClientAmount.String(),
			CustomReason:       r.CustomReason,
			Attachments:        r.Attachments,
			SentToClient:       r.SentToClient,
			SentToClientDate:   formatTimePtr(r.SentToClientDate),
			SentToClientBy:     r.SentToClientBy,
			ClientResponse:     string(r.ClientResponse),
			ClientApprovedDate: formatTimePtr(r.ClientApprovedDate),
			ClientDeniedDate:   formatTimePtr(r.ClientDeniedDate),
			ClientDenyReason:   r.ClientDenyReason,
		})
	}
	return out
}

func fromNTERequestItems(in []nteRequestItem) []entities.NTERequest {
	out := make([]entities.NTERequest, 0, len(in))
	for _, it := range in {
		out = append(out, entities.NTERequest{
			Date:               parseTime(it.Date),
			Amount:             parseDecimal(it.Amount),
			ClientAmount:       parseDecimal(it.ClientAmount),
			CustomReason:       it.CustomReason,
			Attachments:        it.Attachments,
			SentToClient:       it.SentToClient,
			SentToClientDate:   parseTimePtr(it.SentToClientDate),
			SentToClientBy:     it.SentToClientBy,
			ClientResponse:     entities.NTEResponse(it.ClientResponse),
			ClientApprovedDate: parseTimePtr(it.ClientApprovedDate),
			ClientDeniedDate:   parseTimePtr(it.ClientDeniedDate),
			ClientDenyReason:   it.ClientDenyReason,
		})
	}
	return out
}

func toClientNoteItems(in []entities.ClientNote) []clientNoteItem {
	out := make([]clientNoteItem, 0, len(in))
	for _, n := range in {
		out = append(out, clientNoteItem{
			Body:     n.Body,
			User:     n.User,
			Date:     formatTime(n.Date),
			Company:  n.Company,
			Priority: string(n.Priority),
		})
	}
	return out
}

func fromClientNoteItems(in []clientNoteItem) []entities.ClientNote {
	out := make([]entities.ClientNote, 0, len(in))
	for _, it := range in {
		out = append(out, entities.ClientNote{
			Body:     it.Body,
			User:     it.User,
			Date:     parseTime(it.Date),
			Company:  it.Company,
			Priority: entities.NotePriority(it.Priority),
		})
	}
	return out
}

func toActivityItems(in []entities.ActivityEntry) []activityItem {
	out := make([]activityItem, 0, len(in))
	for _, a := range in {
		out = append(out, activityItem{Date: formatTime(a.Date), User: a.User, Action: a.Action})
	}
	return out
}

func fromActivityItems(in []activityItem) []entities.ActivityEntry {
	out := make([]entities.ActivityEntry, 0, len(in))
	for _, it := range in {
		out = append(out, entities.ActivityEntry{Date: parseTime(it.Date), User: it.User, Action: it.Action})
	}
	return out
}

func toCancelDetailsItem(d *entities.CancelDetails) *cancelDetailsItem {
	if d == nil {
		return nil
	}
	return &cancelDetailsItem{Date: formatTime(d.Date), Reason: d.Reason}
}

func toReopenDetailsItem(d *entities.ReopenDetails) *reopenDetailsItem {
	if d == nil {
		return nil
	}
	return &reopenDetailsItem{Date: formatTime(d.Date), User: d.User, Reason: d.Reason}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:            w.ID,
		ClientRef:     w.ClientRef,
		SiteRef:       w.SiteRef,
		ServiceType:   w.ServiceType,
		Description:   w.Description,
		Priority:      string(w.Priority),
		Status:        string(w.Status),
		CreatedDate:   formatTime(w.CreatedDate),
		DueDate:       formatTime(w.DueDate),
		ClientPrice:   w.ClientPrice.String(),
		VendorPrice:   w.VendorPrice.String(),
		Currency:      w.Currency,
		NTERequests:   toNTERequestItems(w.NTERequests),
		ClientNotes:   toClientNoteItems(w.ClientNotes),
		Activity:      toActivityItems(w.Activity),
		Images:        nonNilStrings(w.Images),
		CancelDetails: toCancelDetailsItem(w.CancelDetails),
		ReopenDetails: toReopenDetailsItem(w.ReopenDetails),
		Version:       w.Version,
		UpdatedAt:     formatTime(w.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	w := entities.WorkOrder{
		ID:          it.ID,
		ClientRef:   it.ClientRef,
		SiteRef:     it.SiteRef,
		ServiceType: it.ServiceType,
		Description: it.Description,
		Priority:    entities.Priority(it.Priority),
		Status:      entities.WorkOrderStatus(it.Status),
		CreatedDate: parseTime(it.CreatedDate),
		DueDate:     parseTime(it.DueDate),
		ClientPrice: parseDecimal(it.ClientPrice),
		VendorPrice: parseDecimal(it.VendorPrice),
		Currency:    it.Currency,
		NTERequests: fromNTERequestItems(it.NTERequests),
		ClientNotes: fromClientNoteItems(it.ClientNotes),
		Activity:    fromActivityItems(it.Activity),
		Images:      nonNilStrings(it.Images),
		Version:     it.Version,
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.CancelDetails != nil {
		w.CancelDetails = &entities.CancelDetails{Date: parseTime(it.CancelDetails.Date), Reason: it.CancelDetails.Reason}
	}
	if it.ReopenDetails != nil {
		w.ReopenDetails = &entities.ReopenDetails{Date: parseTime(it.ReopenDetails.Date), User: it.ReopenDetails.User, Reason: it.ReopenDetails.Reason}
	}
	return w
}
