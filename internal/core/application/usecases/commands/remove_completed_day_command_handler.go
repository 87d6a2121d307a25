package commands

import "context"

type RemoveCompletedDayCommandHandler struct {
	completed CompletedOrders
}

func NewRemoveCompletedDayCommandHandler(completed CompletedOrders) RemoveCompletedDayCommandHandler {
	return RemoveCompletedDayCommandHandler{completed: completed}
}

// Handle returns the number of removed records.
func (h RemoveCompletedDayCommandHandler) Handle(ctx context.Context, cmd RemoveCompletedDayCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.completed.RemoveDay(ctx, cmd.Day(), cmd.Confirm())
}
