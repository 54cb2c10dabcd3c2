// Package order holds the dashboard's local view of backend orders and
// the pure filter over it.
package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/pampa-pos/dashboard/internal/backend"
	"github.com/pampa-pos/dashboard/internal/model"
	"go.uber.org/zap"
)

// Backend is the slice of the backend client the repository needs.
type Backend interface {
	ListOrders(ctx context.Context) ([]model.OrderRecord, error)
	CreateOrder(ctx context.Context, header backend.OrderHeader) (*model.OrderRecord, error)
	UpdateOrder(ctx context.Context, id int64, header backend.OrderHeader) (*model.OrderRecord, error)
	DeleteOrder(ctx context.Context, id int64) error
	AdvanceOrder(ctx context.Context, id int64) (*model.OrderRecord, error)
}

// Notifier is told whenever the local order set is replaced.
type Notifier interface {
	OrdersUpdated(orders []model.Order)
}

// Repository is the client-side view of the backend's orders. It is not
// authoritative: every mutation asks the backend and then re-fetches the
// full list rather than patching locally, so the snapshot always matches
// what the backend last reported.
type Repository struct {
	client   Backend
	notifier Notifier
	log      *zap.SugaredLogger

	mu     sync.RWMutex
	orders []model.Order
}

// NewRepository creates an empty repository. notifier may be nil.
func NewRepository(client Backend, notifier Notifier, log *zap.SugaredLogger) *Repository {
	return &Repository{client: client, notifier: notifier, log: log}
}

// Refresh replaces the local set with the backend's current orders,
// normalized. Backend order is preserved.
func (r *Repository) Refresh(ctx context.Context) error {
	records, err := r.client.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}

	orders := make([]model.Order, len(records))
	for i, rec := range records {
		orders[i] = rec.Normalize()
	}

	r.mu.Lock()
	r.orders = orders
	r.mu.Unlock()

	if r.notifier != nil {
		r.notifier.OrdersUpdated(orders)
	}
	return nil
}

// Orders returns the current snapshot in backend order.
func (r *Repository) Orders() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Create persists a new order header and returns the canonical stored
// order, including the backend-assigned id. The save workflow refreshes
// the list once detail records and printing are done, so Create itself
// does not.
func (r *Repository) Create(ctx context.Context, header backend.OrderHeader) (model.Order, error) {
	record, err := r.client.CreateOrder(ctx, header)
	if err != nil {
		return model.Order{}, err
	}
	return record.Normalize(), nil
}

// Update replaces an order's header and returns the stored order. Like
// Create, the refresh is left to the save workflow.
func (r *Repository) Update(ctx context.Context, id int64, header backend.OrderHeader) (model.Order, error) {
	record, err := r.client.UpdateOrder(ctx, id, header)
	if err != nil {
		return model.Order{}, err
	}
	return record.Normalize(), nil
}

// Remove deletes an order. The caller is responsible for having asked
// the user to confirm; there is no undo.
func (r *Repository) Remove(ctx context.Context, id int64) error {
	if err := r.client.DeleteOrder(ctx, id); err != nil {
		return err
	}
	r.refreshAfterMutation(ctx, "delete")
	return nil
}

// Advance asks the backend for the next-status transition. No target
// status is sent; whatever status the backend reports back is accepted,
// including no change at all once an order is paid.
func (r *Repository) Advance(ctx context.Context, id int64) (model.Order, error) {
	record, err := r.client.AdvanceOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	r.refreshAfterMutation(ctx, "advance")
	return record.Normalize(), nil
}

// refreshAfterMutation re-fetches the full list after a successful
// mutation. A failed refresh leaves the previous snapshot visible until
// the next one succeeds; the mutation itself already went through, so
// only a warning is logged.
func (r *Repository) refreshAfterMutation(ctx context.Context, op string) {
	if err := r.Refresh(ctx); err != nil {
		r.log.Warnw("order list refresh failed after mutation", "op", op, "error", err)
	}
}
