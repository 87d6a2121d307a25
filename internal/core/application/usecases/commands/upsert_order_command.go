package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpsertOrderCommandIsNotConstructed = errors.New(
	"UpsertOrderCommand must be created via NewUpsertOrderCommand constructor",
)

// UpsertOrderCommand replaces an order wholesale, or inserts it when the id is new.
type UpsertOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	details order.Details

	guard guard.ConstructorGuard
}

func NewUpsertOrderCommand(orderID string, details order.Details) (UpsertOrderCommand, error) {
	if orderID == "" {
		return UpsertOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	return UpsertOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpsertOrderCommandIsNotConstructed)
}

func (c UpsertOrderCommand) OrderID() string        { return c.orderID }
func (c UpsertOrderCommand) Details() order.Details { return c.details }
