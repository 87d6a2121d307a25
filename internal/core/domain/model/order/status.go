package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the kitchen workflow state of an order.
//
// Any status may be set from any other; the only transition with a side
// effect is the first move into Delivered, which archives the order.
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	   └──────────────┴──────────┴─────> Canceled
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Preparing
	Ready
	Delivered
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// Statuses lists every valid status in workflow order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered, Canceled}
}

// ParseStatus converts the display name of a status back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the workflow states.
func (s Status) Validate() error {
	if s < Pending || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CompletesFrom reports whether moving from previous to s is the transition
// that archives an order: into Delivered from anything else.
func (s Status) CompletesFrom(previous Status) bool {
	return s == Delivered && previous != Delivered
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
