package ports

import "context"

// ConfirmFunc is the confirmation gate for destructive bulk operations. It
// receives a human-readable description of the action and reports whether the
// caller agreed. A nil ConfirmFunc never confirms.
type ConfirmFunc func(ctx context.Context, action string) bool

// Confirmed returns a gate answering yes or no without asking.
func Confirmed(answer bool) ConfirmFunc {
	return func(context.Context, string) bool { return answer }
}
