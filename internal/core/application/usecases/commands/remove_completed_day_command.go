package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveCompletedDayCommandIsNotConstructed = errors.New(
	"RemoveCompletedDayCommand must be created via NewRemoveCompletedDayCommand constructor",
)

// RemoveCompletedDayCommand deletes every archive record completed on one
// local day. Nothing is deleted unless confirm agrees.
//
// Example:
//
//	cmd, _ := NewRemoveCompletedDayCommand("2026-10-17", ports.Confirmed(true))
//	removed, err := handler.Handle(ctx, cmd)
type RemoveCompletedDayCommand struct { //nolint:recvcheck //using for validation
	day     string
	confirm ports.ConfirmFunc

	guard guard.ConstructorGuard
}

func NewRemoveCompletedDayCommand(day string, confirm ports.ConfirmFunc) (RemoveCompletedDayCommand, error) {
	if !kernel.IsDayKey(day) {
		return RemoveCompletedDayCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"day", fmt.Errorf("%q is not a yyyy-MM-dd day", day))
	}
	return RemoveCompletedDayCommand{day: day, confirm: confirm, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCompletedDayCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCompletedDayCommandIsNotConstructed)
}

func (c RemoveCompletedDayCommand) Day() string                { return c.day }
func (c RemoveCompletedDayCommand) Confirm() ports.ConfirmFunc { return c.confirm }
