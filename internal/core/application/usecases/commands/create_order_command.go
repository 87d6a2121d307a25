package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSelectionsAreRequired = errors.New("at least one menu item must be selected")
)

// Selection is one menu item picked for a new order.
type Selection struct {
	ItemID string
	Qty    int
}

// CreateOrderCommand represents a new order taken at the counter. Lines are
// copied from the menu when the command is handled.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(NewOrderInput{
//	    Customer:   "Ana",
//	    Type:       order.DineIn,
//	    Selections: []Selection{{ItemID: "m-soup", Qty: 2}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	input NewOrderInput

	guard guard.ConstructorGuard
}

// NewOrderInput carries the attributes of a new order. A zero Status means Pending.
type NewOrderInput struct {
	Customer    string
	Type        order.Type
	Selections  []Selection
	Status      order.Status
	Assigned    string
	Delivery    *order.DeliveryDetails
	PaymentType string
}

// NewCreateOrderCommand validates the input that does not need the menu.
func NewCreateOrderCommand(input NewOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if input.Status == order.Unknown {
		input.Status = order.Pending
	}

	if err := errors.Join(
		input.Type.Validate(),
		input.Status.Validate(),
		validateSelections(input.Selections),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	input.Customer = strings.TrimSpace(input.Customer)
	input.Selections = append([]Selection(nil), input.Selections...)
	cmd.input = input
	return cmd, nil
}

func validateSelections(selections []Selection) error {
	if len(selections) == 0 {
		return ErrSelectionsAreRequired
	}
	var validationErrs []error
	for i, s := range selections {
		if s.ItemID == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError(fmt.Sprintf("selections[%d].itemId", i)))
		}
		if s.Qty < 1 {
			validationErrs = append(validationErrs,
				errs.NewValueIsOutOfRangeError(fmt.Sprintf("selections[%d].qty", i), s.Qty, 1, "unbounded"))
		}
	}
	return errors.Join(validationErrs...)
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Input returns a copy of the validated input.
func (c CreateOrderCommand) Input() NewOrderInput {
	input := c.input
	input.Selections = append([]Selection(nil), c.input.Selections...)
	return input
}
