package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler resolves menu selections into order lines and
// stores the new order.
type CreateOrderCommandHandler struct {
	orders OrderStore
	menu   MenuCatalog
	ids    kernel.IDGenerator
	clock  kernel.Clock
}

func NewCreateOrderCommandHandler(
	orders OrderStore,
	menu MenuCatalog,
	ids kernel.IDGenerator,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return CreateOrderCommandHandler{orders: orders, menu: menu, ids: ids, clock: clock}
}

// Handle copies name and price of every selected item at this moment, so
// later menu edits never change the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	input := cmd.Input()

	lines := make([]order.Line, 0, len(input.Selections))
	var lineErrs []error
	for _, s := range input.Selections {
		item, ok := h.menu.Find(s.ItemID)
		if !ok {
			lineErrs = append(lineErrs, errs.NewObjectNotFoundError("menuItemId", s.ItemID))
			continue
		}
		line, err := order.NewLine(item.ID(), item.Name(), item.Price(), s.Qty)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(h.ids.NewID(), h.clock(), order.Details{
		Customer:    input.Customer,
		Type:        input.Type,
		Lines:       lines,
		Status:      input.Status,
		Assigned:    input.Assigned,
		Delivery:    input.Delivery,
		PaymentType: input.PaymentType,
	})
	if err != nil {
		return nil, err
	}

	return h.orders.Upsert(ctx, o)
}
