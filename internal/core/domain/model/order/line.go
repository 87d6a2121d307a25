package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Line is an order-owned copy of a menu item. Changing the menu later never
// changes the name or price captured here.
type Line struct {
	itemID string
	name   string
	price  kernel.Money
	qty    int
}

// NewLine creates a validated line: the name is required, the price may not be
// negative and the quantity must be at least 1.
func NewLine(itemID, name string, price kernel.Money, qty int) (Line, error) {
	var validationErrs []error
	if name == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("item name"))
	}
	if price.IsNegative() {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price)))
	}
	if qty < 1 {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is less than 1", qty)))
	}
	if len(validationErrs) > 0 {
		return Line{}, errors.Join(validationErrs...)
	}

	return Line{itemID: itemID, name: name, price: price, qty: qty}, nil
}

// RestoreLine rebuilds a line from persisted data without rejecting it.
// Quantities below 1 are clamped to 1.
func RestoreLine(itemID, name string, price kernel.Money, qty int) Line {
	if qty < 1 {
		qty = 1
	}
	return Line{itemID: itemID, name: name, price: price, qty: qty}
}

func (l Line) ItemID() string      { return l.itemID }
func (l Line) Name() string        { return l.name }
func (l Line) Price() kernel.Money { return l.price }
func (l Line) Qty() int            { return l.qty }

// Total returns qty × price.
func (l Line) Total() kernel.Money {
	return kernel.LineTotal(l.price, l.qty)
}

// Label renders the line as "name xQty", the form used in exports.
func (l Line) Label() string {
	return fmt.Sprintf("%s x%d", l.name, l.qty)
}
