package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// Change event topics.
const (
	OrderUpsertedTopic  = "order.upserted"
	OrderDeletedTopic   = "order.deleted"
	OrderCompletedTopic = "order.completed"
)

// ChangeEvent describes one observable change to an order.
type ChangeEvent struct {
	Topic      string
	OrderID    string
	Order      *order.Order // nil for deletions
	OccurredAt time.Time
}

// ChangePublisher forwards change events to out-of-process observers such as
// kitchen displays.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}
