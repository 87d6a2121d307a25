package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/guard"
)

var ErrClearCompletedCommandIsNotConstructed = errors.New(
	"ClearCompletedCommand must be created via NewClearCompletedCommand constructor",
)

// ClearCompletedCommand empties the completion archive once confirm agrees.
// Live orders are not touched.
type ClearCompletedCommand struct {
	confirm ports.ConfirmFunc

	guard guard.ConstructorGuard
}

func NewClearCompletedCommand(confirm ports.ConfirmFunc) ClearCompletedCommand {
	return ClearCompletedCommand{confirm: confirm, guard: guard.NewConstructorGuard()}
}

func (c ClearCompletedCommand) Validate() error {
	return c.guard.Validate(ErrClearCompletedCommandIsNotConstructed)
}

func (c ClearCompletedCommand) Confirm() ports.ConfirmFunc { return c.confirm }

type ClearCompletedCommandHandler struct {
	completed CompletedOrders
}

func NewClearCompletedCommandHandler(completed CompletedOrders) ClearCompletedCommandHandler {
	return ClearCompletedCommandHandler{completed: completed}
}

func (h ClearCompletedCommandHandler) Handle(ctx context.Context, cmd ClearCompletedCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.completed.Clear(ctx, cmd.Confirm())
}
