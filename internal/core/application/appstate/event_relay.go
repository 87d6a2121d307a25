package appstate

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/store"
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

const defaultRelayBuffer = 256

// EventRelay turns store snapshots into per-order change events and publishes
// them from its own goroutine. Events are dropped with a warning when the
// buffer is full.
type EventRelay struct {
	publisher ports.ChangePublisher
	clock     kernel.Clock
	events    chan ports.ChangeEvent
	logger    *slog.Logger

	// previous is touched only by store listeners, which the store serialises.
	previous map[string]*order.Order
}

func NewEventRelay(publisher ports.ChangePublisher, clock kernel.Clock, buffer int, logger *slog.Logger) *EventRelay {
	if buffer <= 0 {
		buffer = defaultRelayBuffer
	}
	if clock == nil {
		clock = kernel.SystemClock
	}
	return &EventRelay{
		publisher: publisher,
		clock:     clock,
		events:    make(chan ports.ChangeEvent, buffer),
		logger:    logger.With("component", "event_relay"),
		previous:  make(map[string]*order.Order),
	}
}

// Watch subscribes the relay to the order store and the completion archive.
func (r *EventRelay) Watch(orders *store.OrderStore, completed *store.CompletionArchive) {
	for _, o := range orders.Snapshot() {
		r.previous[o.ID()] = o
	}
	orders.Subscribe(r.onOrders)
	completed.SubscribeRecorded(r.onRecorded)
}

func (r *EventRelay) onOrders(ctx context.Context, snapshot []*order.Order) {
	current := make(map[string]*order.Order, len(snapshot))
	for _, o := range snapshot {
		current[o.ID()] = o
		if r.previous[o.ID()] != o {
			r.enqueue(ctx, ports.OrderUpsertedTopic, o.ID(), o)
		}
	}
	for id := range r.previous {
		if _, ok := current[id]; !ok {
			r.enqueue(ctx, ports.OrderDeletedTopic, id, nil)
		}
	}
	r.previous = current
}

func (r *EventRelay) onRecorded(ctx context.Context, record archive.Record) {
	r.enqueue(ctx, ports.OrderCompletedTopic, record.ID(), record.Order())
}

func (r *EventRelay) enqueue(ctx context.Context, topic, id string, o *order.Order) {
	event := ports.ChangeEvent{Topic: topic, OrderID: id, Order: o, OccurredAt: r.clock()}
	select {
	case r.events <- event:
	default:
		r.logger.WarnContext(ctx, "Change event dropped", "topic", topic, "order_id", id)
	}
}

// Run publishes queued events until ctx is cancelled.
func (r *EventRelay) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-r.events:
			if err := r.publisher.Publish(ctx, event); err != nil {
				r.logger.ErrorContext(ctx, "Failed to publish change event",
					"topic", event.Topic, "order_id", event.OrderID, "error", err)
			}
		}
	}
}
