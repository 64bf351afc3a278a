package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/lifecycle"
	"workorder_engine/internal/domain/nte"
	"workorder_engine/internal/domain/permissions"
	"workorder_engine/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type notifyFunc func(updated entities.WorkOrder) (*outboundNotification, error)

type computeFunc func(wo entities.WorkOrder) (entities.WorkOrderPatch, notifyFunc, error)

func lockKey(id string) string {
	return "workorder:" + id
}

// load reads the aggregate and hides work orders of other clients.
func (u *WorkOrderUseCase) load(ctx context.Context, id string, actor entities.ActingUser) (entities.WorkOrder, error) {
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, &PersistenceError{Op: "load work order", Err: err}
	}
	if wo.ID == "" || !actor.CanSeeClient(wo.ClientRef) {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

// mutate runs one read-compute-write cycle. A store timeout fails the whole
// operation; a notification failure only raises the warning flag.
func (u *WorkOrderUseCase) mutate(
	ctx context.Context,
	op string,
	id string,
	actor entities.ActingUser,
	perm permissions.Permission,
	compute computeFunc,
) (MutationResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MutationResult{}, ErrInvalidWorkOrderID
	}
	if err := authorize(actor, perm); err != nil {
		return MutationResult{}, err
	}
	log := u.log.WithFields(logrus.Fields{"op": op, "work_order_id": id, "actor": actor.Email})

	if u.locker != nil {
		unlock, err := u.locker.Lock(ctx, lockKey(id))
		switch {
		case errors.Is(err, interfaces.ErrLockNotObtained):
			log.Warn("work order is locked by another writer")
			return MutationResult{}, &ConflictError{WorkOrderID: id, Err: err}
		case err != nil:
			log.WithError(err).Warn("could not obtain lock; relying on version check")
		default:
			defer func() {
				if err := unlock(context.WithoutCancel(ctx)); err != nil {
					log.WithError(err).Warn("lock release failed")
				}
			}()
		}
	}

	storeCtx, cancel := context.WithTimeout(ctx, u.cfg.StoreTimeout)
	defer cancel()

	wo, err := u.load(storeCtx, id, actor)
	if err != nil {
		if !errors.Is(err, ErrWorkOrderNotFound) {
			log.WithError(err).Error("load failed")
		}
		return MutationResult{}, err
	}

	patch, notify, err := compute(wo)
	if err != nil {
		log.WithError(err).WithField("status", wo.Status).Info("mutation refused")
		return MutationResult{}, domainError(err)
	}
	if patch.IsEmpty() {
		return MutationResult{WorkOrder: wo}, nil
	}
	patch.ExpectedVersion = wo.Version

	updated, err := u.repo.Update(storeCtx, id, patch)
	switch {
	case errors.Is(err, interfaces.ErrVersionConflict):
		log.WithField("expected_version", wo.Version).Warn("version conflict")
		return MutationResult{}, &ConflictError{WorkOrderID: id, ExpectedVersion: wo.Version, Err: err}
	case errors.Is(err, interfaces.ErrWorkOrderMissing):
		return MutationResult{}, ErrWorkOrderNotFound
	case err != nil:
		log.WithError(err).Error("update failed")
		return MutationResult{}, &PersistenceError{Op: "update work order", Err: err}
	}
	log.WithFields(logrus.Fields{"status": updated.Status, "version": updated.Version}).Info("work order updated")

	result := MutationResult{WorkOrder: updated}
	if notify != nil {
		u.dispatch(ctx, log, notify, updated, &result)
	}
	return result, nil
}

func (u *WorkOrderUseCase) dispatch(ctx context.Context, log logrus.FieldLogger, build notifyFunc, updated entities.WorkOrder, result *MutationResult) {
	warn := func(err error) {
		result.NotificationFailed = true
		result.Warnings = append(result.Warnings, fmt.Sprintf("notification not sent: %v", err))
		log.WithError(err).Warn("notification failed; transition kept")
	}

	n, err := build(updated)
	if err != nil {
		warn(err)
		return
	}
	if u.dispatcher == nil {
		warn(errors.New("notification dispatcher not configured"))
		return
	}
	if len(n.Recipients) == 0 {
		log.WithField("kind", n.Kind).Debug("no recipients; notification skipped")
		return
	}

	// The transition is committed; the caller going away must not abort delivery.
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.NotificationTimeout)
	defer cancel()
	if err := u.dispatcher.Send(nctx, n.Subject, n.HTMLBody, n.Recipients); err != nil {
		warn(err)
		return
	}
	log.WithFields(logrus.Fields{"kind": n.Kind, "recipients": len(n.Recipients)}).Debug("notification sent")
}

// domainError turns domain input errors into ValidationError and passes
// everything else through.
func domainError(err error) error {
	switch {
	case errors.Is(err, lifecycle.ErrReasonRequired):
		return newValidationError("reason", err.Error())
	case errors.Is(err, lifecycle.ErrInvalidPriority):
		return newValidationError("priority", err.Error())
	case errors.Is(err, nte.ErrDenyReasonRequired):
		return newValidationError("reason", err.Error())
	default:
		return err
	}
}
