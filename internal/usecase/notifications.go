package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/nte"
)

type notificationKind string

const (
	notifyCancelled  notificationKind = "cancelled"
	notifyReopened   notificationKind = "reopened"
	notifyNTEApprove notificationKind = "nte_approved"
	notifyNTEDeny    notificationKind = "nte_denied"
	notifyNoteAdded  notificationKind = "note_added"
)

type outboundNotification struct {
	Kind       notificationKind
	Subject    string
	HTMLBody   string
	Recipients []string
}

type notificationView struct {
	WorkOrder entities.WorkOrder
	Actor     string
	Company   string
	Date      string
	Reason    string
	Previous  string
	Amount    string
	Increase  string
	Note      *entities.ClientNote
}

var notificationTemplates = template.Must(template.New("notifications").Parse(`
{{define "cancelled"}}<p>Work order <b>{{.WorkOrder.ID}}</b> ({{.WorkOrder.ServiceType}}) was cancelled by {{.Actor}} on {{.Date}}.</p><p>Reason: {{.Reason}}</p>{{end}}
{{define "reopened"}}<p>Work order <b>{{.WorkOrder.ID}}</b> was reopened by {{.Actor}} on {{.Date}}.</p><p>Reason: {{.Reason}}</p>{{end}}
{{define "nte_approved"}}<p>{{.Actor}} approved an NTE increase on work order <b>{{.WorkOrder.ID}}</b>.</p><p>Previous NTE: {{.Previous}} {{.WorkOrder.Currency}}<br>Approved NTE: {{.Amount}} {{.WorkOrder.Currency}}<br>Increase: {{.Increase}} {{.WorkOrder.Currency}}</p>{{end}}
{{define "nte_denied"}}<p>{{.Actor}} denied an NTE increase to {{.Amount}} {{.WorkOrder.Currency}} on work order <b>{{.WorkOrder.ID}}</b>.</p><p>Reason: {{.Reason}}</p>{{end}}
{{define "note_added"}}<p>{{.Actor}}{{if .Company}} ({{.Company}}){{end}} added a {{.Note.Priority}} priority note to work order <b>{{.WorkOrder.ID}}</b>:</p><blockquote>{{.Note.Body}}</blockquote>{{end}}
`))

func renderNotification(kind notificationKind, view notificationView) (string, error) {
	var buf bytes.Buffer
	if err := notificationTemplates.ExecuteTemplate(&buf, string(kind), view); err != nil {
		return "", fmt.Errorf("render %s notification: %w", kind, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006 15:04 MST")
}

// recipients merges the distribution list with extra addresses, dropping blanks and duplicates.
func recipients(list []string, extra ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range append(append([]string{}, list...), extra...) {
		r = strings.TrimSpace(r)
		key := strings.ToLower(r)
		if r == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func (u *WorkOrderUseCase) cancelNotification(wo entities.WorkOrder, actor entities.ActingUser) (*outboundNotification, error) {
	view := notificationView{WorkOrder: wo, Actor: actor.DisplayName(), Date: formatDate(u.now())}
	if wo.CancelDetails != nil {
		view.Reason = wo.CancelDetails.Reason
		view.Date = formatDate(wo.CancelDetails.Date)
	}
	body, err := renderNotification(notifyCancelled, view)
	if err != nil {
		return nil, err
	}
	return &outboundNotification{
		Kind:       notifyCancelled,
		Subject:    fmt.Sprintf("Work order %s cancelled", wo.ID),
		HTMLBody:   body,
		Recipients: recipients(u.cfg.Recipients, actor.Email),
	}, nil
}

func (u *WorkOrderUseCase) reopenNotification(wo entities.WorkOrder, actor entities.ActingUser) (*outboundNotification, error) {
	view := notificationView{WorkOrder: wo, Actor: actor.DisplayName(), Date: formatDate(u.now())}
	if wo.ReopenDetails != nil {
		view.Reason = wo.ReopenDetails.Reason
		view.Date = formatDate(wo.ReopenDetails.Date)
	}
	body, err := renderNotification(notifyReopened, view)
	if err != nil {
		return nil, err
	}
	return &outboundNotification{
		Kind:       notifyReopened,
		Subject:    fmt.Sprintf("Work order %s reopened", wo.ID),
		HTMLBody:   body,
		Recipients: recipients(u.cfg.Recipients, actor.Email),
	}, nil
}

func (u *WorkOrderUseCase) nteApprovedNotification(before entities.WorkOrder, req entities.NTERequest, actor entities.ActingUser) (*outboundNotification, error) {
	body, err := renderNotification(notifyNTEApprove, notificationView{
		WorkOrder: before,
		Actor:     actor.DisplayName(),
		Previous:  before.ClientPrice.StringFixed(2),
		Amount:    req.ClientAmount.StringFixed(2),
		Increase:  nte.Increase(req, before.ClientPrice).StringFixed(2),
	})
	if err != nil {
		return nil, err
	}
	return &outboundNotification{
		Kind:       notifyNTEApprove,
		Subject:    fmt.Sprintf("NTE increase approved for work order %s", before.ID),
		HTMLBody:   body,
		Recipients: recipients(u.cfg.Recipients, actor.Email, req.SentToClientBy),
	}, nil
}

func (u *WorkOrderUseCase) nteDeniedNotification(wo entities.WorkOrder, req entities.NTERequest, actor entities.ActingUser) (*outboundNotification, error) {
	body, err := renderNotification(notifyNTEDeny, notificationView{
		WorkOrder: wo,
		Actor:     actor.DisplayName(),
		Amount:    req.ClientAmount.StringFixed(2),
		Reason:    req.ClientDenyReason,
	})
	if err != nil {
		return nil, err
	}
	return &outboundNotification{
		Kind:       notifyNTEDeny,
		Subject:    fmt.Sprintf("NTE increase denied for work order %s", wo.ID),
		HTMLBody:   body,
		Recipients: recipients(u.cfg.Recipients, actor.Email, req.SentToClientBy),
	}, nil
}

func (u *WorkOrderUseCase) noteNotification(wo entities.WorkOrder, note entities.ClientNote, actor entities.ActingUser) (*outboundNotification, error) {
	body, err := renderNotification(notifyNoteAdded, notificationView{
		WorkOrder: wo,
		Actor:     actor.DisplayName(),
		Company:   note.Company,
		Note:      &note,
	})
	if err != nil {
		return nil, err
	}
	return &outboundNotification{
		Kind:       notifyNoteAdded,
		Subject:    fmt.Sprintf("New note on work order %s", wo.ID),
		HTMLBody:   body,
		Recipients: recipients(u.cfg.Recipients),
	}, nil
}
