package interfaces

import (
	"context"
	"errors"

	"workorder_engine/internal/domain/entities"
)

var (
	// ErrVersionConflict is returned by Update when the stored version is not the expected one.
	ErrVersionConflict = errors.New("work order version conflict")
	// ErrWorkOrderMissing is returned by Update when the document does not exist.
	ErrWorkOrderMissing = errors.New("work order does not exist")
	// ErrWorkOrderExists is returned by Create when the id is taken.
	ErrWorkOrderExists = errors.New("work order already exists")
)

// IWorkOrderRepository abstracts persistence of the WorkOrder aggregate.
//
// The engine needs to:
//   - create a work order on submission
//   - read the latest version before computing a patch
//   - apply a patch guarded by the version it read (optimistic concurrency)
//   - list work orders of a client
//
// GetByID returns a zero WorkOrder (empty ID) when nothing is stored.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	ListByClient(ctx context.Context, clientRef string) ([]entities.WorkOrder, error)
}
