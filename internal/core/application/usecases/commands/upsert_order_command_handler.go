package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

type UpsertOrderCommandHandler struct {
	orders OrderStore
	clock  kernel.Clock
}

func NewUpsertOrderCommandHandler(orders OrderStore, clock kernel.Clock) UpsertOrderCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return UpsertOrderCommandHandler{orders: orders, clock: clock}
}

// Handle keeps the creation time of an existing order; a new order is
// stamped now.
func (h UpsertOrderCommandHandler) Handle(ctx context.Context, cmd UpsertOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	createdAt := h.clock()
	existing, err := h.orders.Get(cmd.OrderID())
	switch {
	case err == nil:
		createdAt = existing.CreatedAt()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), createdAt, cmd.Details())
	if err != nil {
		return nil, err
	}
	return h.orders.Upsert(ctx, o)
}
