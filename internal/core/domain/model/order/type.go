package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type describes how an order leaves the restaurant.
type Type int

const (
	UnknownType Type = iota
	DineIn
	Takeaway
	Delivery
)

// Types lists every valid order type.
func Types() []Type {
	return []Type{DineIn, Takeaway, Delivery}
}

// ParseType converts a display name such as "Dine-in" to a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks that the type is one of DineIn, Takeaway or Delivery.
func (t Type) Validate() error {
	if t < DineIn || t > Delivery {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	switch t {
	case DineIn:
		return "Dine-in"
	case Takeaway:
		return "Takeaway"
	case Delivery:
		return "Delivery"
	}
	return "Unknown"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
