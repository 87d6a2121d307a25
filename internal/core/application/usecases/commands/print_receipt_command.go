package commands

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPrintReceiptCommandIsNotConstructed = errors.New(
	"PrintReceiptCommand must be created via NewPrintReceiptCommand constructor",
)

// PrintReceiptCommand sends the receipt of a live order to a print surface.
type PrintReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewPrintReceiptCommand(orderID string) (PrintReceiptCommand, error) {
	if orderID == "" {
		return PrintReceiptCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	return PrintReceiptCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c PrintReceiptCommand) Validate() error {
	return c.guard.Validate(ErrPrintReceiptCommandIsNotConstructed)
}

func (c PrintReceiptCommand) OrderID() string { return c.orderID }
