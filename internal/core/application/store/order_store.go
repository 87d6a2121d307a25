package store

import (
	"context"
	"log/slog"
	"sync"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Archiver receives orders that just transitioned into Delivered.
type Archiver interface {
	Archive(ctx context.Context, o *order.Order) (bool, error)
}

// OrderStore owns the live orders. Orders are immutable values; every
// mutation replaces the stored pointer, so snapshots can share them safely.
type OrderStore struct {
	mu        sync.Mutex
	orders    []*order.Order
	archiver  Archiver
	listeners broadcaster[[]*order.Order]
	logger    *slog.Logger
}

// NewOrderStore creates a store holding initial, which is kept in the given
// order (newest inserted first).
func NewOrderStore(initial []*order.Order, archiver Archiver, logger *slog.Logger) *OrderStore {
	orders := make([]*order.Order, len(initial))
	copy(orders, initial)
	return &OrderStore{
		orders:   orders,
		archiver: archiver,
		logger:   logger.With("component", "order_store"),
	}
}

// Subscribe registers l for snapshots after every mutation.
func (s *OrderStore) Subscribe(l Listener[[]*order.Order]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners.add(l)
}

// Snapshot returns the live orders, newest inserted first.
func (s *OrderStore) Snapshot() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Revision changes after every mutation.
func (s *OrderStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listeners.revision
}

// Restore replaces the live orders with reloaded ones unless the store was
// mutated after revision was read. Nothing is archived.
func (s *OrderStore) Restore(ctx context.Context, orders []*order.Order, revision uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners.revision != revision {
		return false
	}
	s.orders = make([]*order.Order, len(orders))
	copy(s.orders, orders)
	s.listeners.notify(ctx, s.snapshotLocked())
	return true
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.orders[i], nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

// Upsert inserts o at the head of the live orders or replaces the order with
// the same id wholesale. A replacement keeps the stored creation time. The
// order is archived when it is new and already Delivered, or when the
// replacement moves it into Delivered.
func (s *OrderStore) Upsert(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(o.ID())
	if i < 0 {
		stored := o.Clone()
		s.orders = append([]*order.Order{stored}, s.orders...)
		if stored.Status() == order.Delivered {
			s.archiveLocked(ctx, stored)
		}
		s.listeners.notify(ctx, s.snapshotLocked())
		return stored, nil
	}

	previous := s.orders[i]
	replaced, err := previous.Replace(o.Details())
	if err != nil {
		return nil, err
	}
	s.commitLocked(ctx, i, previous, replaced)
	return replaced, nil
}

// Patch merges p into the order with the given id under the same archival rule as Upsert.
func (s *OrderStore) Patch(ctx context.Context, id string, p order.Patch) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.logger.WarnContext(ctx, "Patch of unknown order ignored", "order_id", id)
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	previous := s.orders[i]
	patched, err := previous.Apply(p)
	if err != nil {
		return nil, err
	}
	s.commitLocked(ctx, i, previous, patched)
	return patched, nil
}

// Delete removes the live order. Archived records are not touched.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.logger.WarnContext(ctx, "Delete of unknown order ignored", "order_id", id)
		return errs.NewObjectNotFoundError("orderId", id)
	}

	s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
	s.listeners.notify(ctx, s.snapshotLocked())
	return nil
}

func (s *OrderStore) commitLocked(ctx context.Context, i int, previous, next *order.Order) {
	s.orders[i] = next
	if next.Status().CompletesFrom(previous.Status()) {
		s.archiveLocked(ctx, next)
	}
	s.listeners.notify(ctx, s.snapshotLocked())
}

func (s *OrderStore) archiveLocked(ctx context.Context, o *order.Order) {
	if s.archiver == nil {
		return
	}
	added, err := s.archiver.Archive(ctx, o)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to archive completed order", "order_id", o.ID(), "error", err)
		return
	}
	if !added {
		s.logger.DebugContext(ctx, "Order already archived", "order_id", o.ID())
	}
}

func (s *OrderStore) indexLocked(id string) int {
	for i, o := range s.orders {
		if o.ID() == id {
			return i
		}
	}
	return -1
}

func (s *OrderStore) snapshotLocked() []*order.Order {
	snapshot := make([]*order.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}
