package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

type PatchOrderCommandHandler struct {
	orders OrderStore
}

func NewPatchOrderCommandHandler(orders OrderStore) PatchOrderCommandHandler {
	return PatchOrderCommandHandler{orders: orders}
}

// Handle applies the patch. Moving the order into Delivered archives it.
func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Patch(ctx, cmd.OrderID(), cmd.Patch())
}
