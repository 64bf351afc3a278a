package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/ledger"
	"workorder_engine/internal/domain/lifecycle"
	"workorder_engine/internal/domain/nte"
	"workorder_engine/internal/domain/permissions"
	"workorder_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultStoreTimeout        = 10 * time.Second
	defaultNotificationTimeout = 15 * time.Second
	defaultCurrency            = "USD"
)

// IWorkOrderUseCase exposes the client-facing work order engine.
//
// Every mutation follows the same path:
//   - validate input, authorize the acting user
//   - read the latest aggregate, compute a patch in the domain packages
//   - persist the patch guarded by the version read
//   - dispatch the notification, if any (failures become warnings)

type IWorkOrderUseCase interface {
	Create(ctx context.Context, cmd CreateWorkOrderCommand, actor entities.ActingUser) (MutationResult, error)
	GetByID(ctx context.Context, id string, actor entities.ActingUser) (entities.WorkOrder, error)
	ListByClient(ctx context.Context, clientRef string, actor entities.ActingUser) ([]entities.WorkOrder, error)
	Cancel(ctx context.Context, id, reason string, actor entities.ActingUser) (MutationResult, error)
	Reopen(ctx context.Context, id, reason string, actor entities.ActingUser) (MutationResult, error)
	ChangePriority(ctx context.Context, id string, priority entities.Priority, actor entities.ActingUser) (MutationResult, error)
	ApproveNTE(ctx context.Context, id, requestKey string, actor entities.ActingUser) (MutationResult, error)
	DenyNTE(ctx context.Context, id, requestKey, reason string, actor entities.ActingUser) (MutationResult, error)
	AddNote(ctx context.Context, id, body string, priority entities.NotePriority, actor entities.ActingUser) (MutationResult, error)
	AddImage(ctx context.Context, id string, upload ImageUpload, actor entities.ActingUser) (MutationResult, error)
	NTEOverview(ctx context.Context, id string, actor entities.ActingUser) (nte.Overview, error)
}

// MutationResult is the outcome of a committed mutation. NotificationFailed is
// the warning flag raised when the follow-up notification could not be sent.
type MutationResult struct {
	WorkOrder          entities.WorkOrder
	NotificationFailed bool
	Warnings           []string
}

type CreateWorkOrderCommand struct {
	ClientRef        string
	SiteRef          string
	ServiceType      string
	Description      string
	Priority         entities.Priority
	ClientPrice      decimal.Decimal
	Currency         string
	RequiresProposal bool
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// WorkOrderUseCaseConfig carries timeouts, the notification distribution list
// and the audit switches.
type WorkOrderUseCaseConfig struct {
	StoreTimeout        time.Duration
	NotificationTimeout time.Duration
	Recipients          []string

	// NotifyOnReopen and LedgerOnPriorityChange default to false, which keeps
	// reopen silent and priority changes out of the ledger.
	NotifyOnReopen         bool
	LedgerOnPriorityChange bool
}

type WorkOrderUseCase struct {
	repo       interfaces.IWorkOrderRepository
	dispatcher interfaces.INotificationDispatcher
	blobs      interfaces.IBlobStore
	locker     interfaces.ILocker
	cfg        WorkOrderUseCaseConfig
	log        logrus.FieldLogger
	now        func() time.Time
	newID      func() string
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

type Option func(*WorkOrderUseCase)

func WithLogger(l logrus.FieldLogger) Option {
	return func(u *WorkOrderUseCase) { u.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(u *WorkOrderUseCase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *WorkOrderUseCase) { u.newID = newID }
}

// WithLocker enables per-work-order serialization on top of version checks.
func WithLocker(l interfaces.ILocker) Option {
	return func(u *WorkOrderUseCase) { u.locker = l }
}

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	dispatcher interfaces.INotificationDispatcher,
	blobs interfaces.IBlobStore,
	cfg WorkOrderUseCaseConfig,
	opts ...Option,
) *WorkOrderUseCase {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	if cfg.NotificationTimeout <= 0 {
		cfg.NotificationTimeout = defaultNotificationTimeout
	}
	u := &WorkOrderUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		blobs:      blobs,
		cfg:        cfg,
		log:        logrus.StandardLogger(),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.log = u.log.WithField("component", "workorder")
	return u
}

func authorize(actor entities.ActingUser, perm permissions.Permission) error {
	if strings.TrimSpace(actor.Email) == "" {
		return ErrActingUserRequired
	}
	if !actor.Can(perm) {
		return &AuthorizationError{Role: actor.Role, Permission: perm}
	}
	return nil
}

func (u *WorkOrderUseCase) Create(ctx context.Context, cmd CreateWorkOrderCommand, actor entities.ActingUser) (MutationResult, error) {
	if err := authorize(actor, permissions.WorkOrderCreate); err != nil {
		return MutationResult{}, err
	}

	clientRef := strings.TrimSpace(cmd.ClientRef)
	if !actor.Can(permissions.WorkOrderViewAllClients) {
		if clientRef != "" && clientRef != actor.ClientRef {
			return MutationResult{}, newValidationError("client_ref", "cannot submit work orders for another client")
		}
		clientRef = actor.ClientRef
	}
	switch {
	case clientRef == "":
		return MutationResult{}, newValidationError("client_ref", "is required")
	case strings.TrimSpace(cmd.SiteRef) == "":
		return MutationResult{}, newValidationError("site_ref", "is required")
	case strings.TrimSpace(cmd.ServiceType) == "":
		return MutationResult{}, newValidationError("service_type", "is required")
	case strings.TrimSpace(cmd.Description) == "":
		return MutationResult{}, newValidationError("description", "is required")
	case !cmd.Priority.IsValid():
		return MutationResult{}, newValidationError("priority", "must be one of P-1, P-2, P-3, P-4")
	case cmd.ClientPrice.IsNegative():
		return MutationResult{}, newValidationError("client_price", "must not be negative")
	}

	status := entities.StatusNew
	if cmd.RequiresProposal || cmd.ClientPrice.IsZero() {
		status = entities.StatusRequiresProposal
	}
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	now := u.now()
	wo := entities.WorkOrder{
		ID:          u.newID(),
		ClientRef:   clientRef,
		SiteRef:     strings.TrimSpace(cmd.SiteRef),
		ServiceType: strings.TrimSpace(cmd.ServiceType),
		Description: strings.TrimSpace(cmd.Description),
		Priority:    cmd.Priority,
		Status:      status,
		CreatedDate: now,
		DueDate:     cmd.Priority.DueDate(now),
		ClientPrice: cmd.ClientPrice,
		VendorPrice: decimal.Zero,
		Currency:    currency,
		NTERequests: []entities.NTERequest{},
		ClientNotes: []entities.ClientNote{},
		Activity:    ledger.Prepend(nil, ledger.NewEntry(now, actor.DisplayName(), ledger.SubmittedAction(status))),
		Images:      []string{},
		Version:     1,
		UpdatedAt:   now,
	}

	storeCtx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()
	created, err := u.repo.Create(storeCtx, wo)
	if err != nil {
		u.log.WithFields(logrus.Fields{"op": "create", "work_order_id": wo.ID}).WithError(err).Error("create failed")
		return MutationResult{}, &PersistenceError{Op: "create work order", Err: err}
	}
	u.log.WithFields(logrus.Fields{"op": "create", "work_order_id": created.ID, "status": created.Status}).Info("work order submitted")
	return MutationResult{WorkOrder: created}, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string, actor entities.ActingUser) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if err := authorize(actor, permissions.WorkOrderView); err != nil {
		return entities.WorkOrder{}, err
	}
	storeCtx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()
	return u.load(storeCtx, id, actor)
}

func (u *WorkOrderUseCase) ListByClient(ctx context.Context, clientRef string, actor entities.ActingUser) ([]entities.WorkOrder, error) {
	if err := authorize(actor, permissions.WorkOrderView); err != nil {
		return nil, err
	}
	clientRef = strings.TrimSpace(clientRef)
	if clientRef == "" {
		clientRef = actor.ClientRef
	}
	if clientRef == "" {
		return nil, newValidationError("client_ref", "is required")
	}
	if !actor.CanSeeClient(clientRef) {
		return nil, &AuthorizationError{Role: actor.Role, Permission: permissions.WorkOrderViewAllClients}
	}

	storeCtx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()
	items, err := u.repo.ListByClient(storeCtx, clientRef)
	if err != nil {
		return nil, &PersistenceError{Op: "list work orders", Err: err}
	}
	return items, nil
}

func (u *WorkOrderUseCase) NTEOverview(ctx context.Context, id string, actor entities.ActingUser) (nte.Overview, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nte.Overview{}, ErrInvalidWorkOrderID
	}
	if err := authorize(actor, permissions.NTEView); err != nil {
		return nte.Overview{}, err
	}
	storeCtx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()
	wo, err := u.load(storeCtx, id, actor)
	if err != nil {
		return nte.Overview{}, err
	}
	return nte.BuildOverview(wo), nil
}

func (u *WorkOrderUseCase) Cancel(ctx context.Context, id, reason string, actor entities.ActingUser) (MutationResult, error) {
	if strings.TrimSpace(reason) == "" {
		return MutationResult{}, newValidationError("reason", "a cancellation reason is required")
	}
	return u.mutate(ctx, "cancel", id, actor, permissions.WorkOrderCancel,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			patch, err := lifecycle.Cancel(wo, reason, actor, u.now())
			if err != nil {
				return patch, nil, err
			}
			return patch, func(updated entities.WorkOrder) (*outboundNotification, error) {
				return u.cancelNotification(updated, actor)
			}, nil
		})
}

func (u *WorkOrderUseCase) Reopen(ctx context.Context, id, reason string, actor entities.ActingUser) (MutationResult, error) {
	if strings.TrimSpace(reason) == "" {
		return MutationResult{}, newValidationError("reason", "a reopen reason is required")
	}
	return u.mutate(ctx, "reopen", id, actor, permissions.WorkOrderReopen,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			patch, err := lifecycle.Reopen(wo, reason, actor, u.now())
			if err != nil || !u.cfg.NotifyOnReopen {
				return patch, nil, err
			}
			return patch, func(updated entities.WorkOrder) (*outboundNotification, error) {
				return u.reopenNotification(updated, actor)
			}, nil
		})
}

func (u *WorkOrderUseCase) ChangePriority(ctx context.Context, id string, priority entities.Priority, actor entities.ActingUser) (MutationResult, error) {
	if !priority.IsValid() {
		return MutationResult{}, newValidationError("priority", "must be one of P-1, P-2, P-3, P-4")
	}
	policy := lifecycle.Policy{LedgerOnPriorityChange: u.cfg.LedgerOnPriorityChange}
	return u.mutate(ctx, "change_priority", id, actor, permissions.WorkOrderChangePriority,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			patch, err := lifecycle.ChangePriority(wo, priority, actor, u.now(), policy)
			return patch, nil, err
		})
}

func (u *WorkOrderUseCase) ApproveNTE(ctx context.Context, id, requestKey string, actor entities.ActingUser) (MutationResult, error) {
	if strings.TrimSpace(requestKey) == "" {
		return MutationResult{}, newValidationError("request_key", "is required")
	}
	return u.mutate(ctx, "approve_nte", id, actor, permissions.NTEApprove,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			patch, req, err := nte.Approve(wo, requestKey, actor, u.now())
			if err != nil {
				return patch, nil, err
			}
			return patch, func(entities.WorkOrder) (*outboundNotification, error) {
				return u.nteApprovedNotification(wo, req, actor)
			}, nil
		})
}

func (u *WorkOrderUseCase) DenyNTE(ctx context.Context, id, requestKey, reason string, actor entities.ActingUser) (MutationResult, error) {
	if strings.TrimSpace(requestKey) == "" {
		return MutationResult{}, newValidationError("request_key", "is required")
	}
	if strings.TrimSpace(reason) == "" {
		return MutationResult{}, newValidationError("reason", "a deny reason is required")
	}
	return u.mutate(ctx, "deny_nte", id, actor, permissions.NTEDeny,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			patch, req, err := nte.Deny(wo, requestKey, reason, actor, u.now())
			if err != nil {
				return patch, nil, err
			}
			return patch, func(updated entities.WorkOrder) (*outboundNotification, error) {
				return u.nteDeniedNotification(updated, req, actor)
			}, nil
		})
}

func (u *WorkOrderUseCase) AddNote(ctx context.Context, id, body string, priority entities.NotePriority, actor entities.ActingUser) (MutationResult, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return MutationResult{}, newValidationError("body", "note body cannot be empty")
	}
	if _, err := entities.ParseNotePriority(string(priority)); err != nil {
		return MutationResult{}, newValidationError("priority", "must be one of Low, Medium, High")
	}
	return u.mutate(ctx, "add_note", id, actor, permissions.NoteCreate,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			now := u.now()
			note := entities.ClientNote{
				Body:     body,
				User:     actor.DisplayName(),
				Date:     now,
				Company:  actor.Company,
				Priority: priority,
			}
			notes := append([]entities.ClientNote{note}, wo.ClientNotes...)
			activity := ledger.Prepend(wo.Activity, ledger.NewEntry(now, actor.DisplayName(), ledger.NoteAddedAction(priority)))
			patch := entities.WorkOrderPatch{ClientNotes: &notes, Activity: &activity}
			return patch, func(updated entities.WorkOrder) (*outboundNotification, error) {
				return u.noteNotification(updated, note, actor)
			}, nil
		})
}

func (u *WorkOrderUseCase) AddImage(ctx context.Context, id string, upload ImageUpload, actor entities.ActingUser) (MutationResult, error) {
	if len(upload.Data) == 0 {
		return MutationResult{}, newValidationError("file", "is required")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return MutationResult{}, newValidationError("file", "must be an image")
	}
	if u.blobs == nil {
		return MutationResult{}, &PersistenceError{Op: "upload image", Err: errors.New("blob store not configured")}
	}

	name := path.Base(strings.TrimSpace(upload.FileName))
	if name == "." || name == "/" || name == "" {
		name = "image"
	}

	// The upload runs inside compute, after load has checked existence and
	// client visibility.
	return u.mutate(ctx, "add_image", id, actor, permissions.WorkOrderUpload,
		func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error) {
			key := fmt.Sprintf("work-orders/%s/images/%s-%s", wo.ID, u.newID(), name)
			url, err := u.blobs.PutObject(ctx, key, upload.Data, upload.ContentType)
			if err != nil {
				u.log.WithFields(logrus.Fields{"op": "add_image", "work_order_id": wo.ID, "key": key}).WithError(err).Error("blob upload failed")
				return entities.WorkOrderPatch{}, nil, &PersistenceError{Op: "upload image", Err: err}
			}
			images := append(append([]string{}, wo.Images...), url)
			activity := ledger.Prepend(wo.Activity, ledger.NewEntry(u.now(), actor.DisplayName(), ledger.ImageAddedAction(name)))
			return entities.WorkOrderPatch{Images: &images, Activity: &activity}, nil, nil
		})
}
