package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/usecase/interfaces"
)

// WorkOrderMemoryRepository keeps work orders in process memory.
//
// It honours the same contract as the DynamoDB repository (version checks,
// partial patches) and backs local runs with STORE_DRIVER=memory and tests.
type WorkOrderMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.WorkOrder
	now   func() time.Time
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

func NewWorkOrderMemoryRepository(seed ...entities.WorkOrder) *WorkOrderMemoryRepository {
	r := &WorkOrderMemoryRepository{
		items: make(map[string]entities.WorkOrder, len(seed)),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, wo := range seed {
		if wo.Version == 0 {
			wo.Version = 1
		}
		r.items[wo.ID] = wo.Clone()
	}
	return r
}

func (r *WorkOrderMemoryRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[wo.ID]; ok {
		return entities.WorkOrder{}, interfaces.ErrWorkOrderExists
	}
	if wo.Version == 0 {
		wo.Version = 1
	}
	r.items[wo.ID] = wo.Clone()
	return wo.Clone(), nil
}

func (r *WorkOrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	wo, ok := r.items[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	return wo.Clone(), nil
}

func (r *WorkOrderMemoryRepository) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[id]
	if !ok {
		return entities.WorkOrder{}, interfaces.ErrWorkOrderMissing
	}
	if current.Version != patch.ExpectedVersion {
		return entities.WorkOrder{}, interfaces.ErrVersionConflict
	}
	next := patch.Apply(current)
	next.Version = current.Version + 1
	next.UpdatedAt = r.now()
	r.items[id] = next
	return next.Clone(), nil
}

func (r *WorkOrderMemoryRepository) ListByClient(ctx context.Context, clientRef string) ([]entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.WorkOrder, 0)
	for _, wo := range r.items {
		if wo.ClientRef == clientRef {
			out = append(out, wo.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedDate.After(out[j].CreatedDate) })
	return out, nil
}
