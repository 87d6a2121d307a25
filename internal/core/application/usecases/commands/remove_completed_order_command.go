package commands

import (
	"context"
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveCompletedOrderCommandIsNotConstructed = errors.New(
	"RemoveCompletedOrderCommand must be created via NewRemoveCompletedOrderCommand constructor",
)

// RemoveCompletedOrderCommand deletes one record from the completion archive.
type RemoveCompletedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewRemoveCompletedOrderCommand(orderID string) (RemoveCompletedOrderCommand, error) {
	if orderID == "" {
		return RemoveCompletedOrderCommand{}, errs.NewValueIsRequiredError("completedOrderId")
	}
	return RemoveCompletedOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCompletedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCompletedOrderCommandIsNotConstructed)
}

func (c RemoveCompletedOrderCommand) OrderID() string { return c.orderID }

type RemoveCompletedOrderCommandHandler struct {
	completed CompletedOrders
}

func NewRemoveCompletedOrderCommandHandler(completed CompletedOrders) RemoveCompletedOrderCommandHandler {
	return RemoveCompletedOrderCommandHandler{completed: completed}
}

func (h RemoveCompletedOrderCommandHandler) Handle(ctx context.Context, cmd RemoveCompletedOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.completed.Remove(ctx, cmd.OrderID())
}
