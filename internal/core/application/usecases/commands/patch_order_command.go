package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPatchOrderCommandIsNotConstructed = errors.New(
		"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
	)
	ErrPatchIsEmpty = errors.New("patch changes nothing")
)

// PatchOrderCommand merges a partial update into an order, typically a
// status change from the kitchen board.
type PatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewPatchOrderCommand(orderID string, patch order.Patch) (PatchOrderCommand, error) {
	var validationErrs []error
	if orderID == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("orderId"))
	}
	if patch.IsEmpty() {
		validationErrs = append(validationErrs, ErrPatchIsEmpty)
	}
	if patch.Status != nil {
		validationErrs = append(validationErrs, patch.Status.Validate())
	}
	if patch.Type != nil {
		validationErrs = append(validationErrs, patch.Type.Validate())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return PatchOrderCommand{}, err
	}

	return PatchOrderCommand{orderID: orderID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

func (c PatchOrderCommand) OrderID() string    { return c.orderID }
func (c PatchOrderCommand) Patch() order.Patch { return c.patch }
