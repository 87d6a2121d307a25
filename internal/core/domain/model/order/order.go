package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details carries every mutable attribute of an order. It is the input of
// NewOrder and the unit of wholesale replacement in the order store.
type Details struct {
	Customer    string
	Type        Type
	Lines       []Line
	Status      Status
	Assigned    string
	Delivery    *DeliveryDetails
	PaymentType string
}

// Order is the aggregate root of a restaurant order.
//
// Order follows these invariants:
//   - Must have a non-empty identifier that never changes
//   - Must have at least one line
//   - Delivery details exist only for Delivery orders, and always exist for them
//   - createdAt is fixed at construction
//
// Orders are treated as values by the store: mutations produce a new Order,
// so snapshots handed to listeners and to the archive are never aliased.
type Order struct {
	id        string
	createdAt time.Time
	details   Details

	isConstructed bool
}

// NewOrder creates a validated Order.
//
// Example:
//
//	soup, _ := order.NewLine("m-soup", "Soup", kernel.NewMoney(5), 2)
//	o, err := order.NewOrder("ORD-1", time.Now(), order.Details{
//	    Customer: "Ana",
//	    Type:     order.DineIn,
//	    Lines:    []order.Line{soup},
//	    Status:   order.Pending,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Total()) // 10.00
func NewOrder(id string, createdAt time.Time, details Details) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted data. Only the identifier is
// required; everything else is accepted as stored, so older snapshots that
// predate validation still load.
func RestoreOrder(id string, createdAt time.Time, details Details) (*Order, error) {
	o := &Order{isConstructed: true, createdAt: createdAt}
	if err := o.setID(id); err != nil {
		return nil, err
	}
	o.details = normalize(details)
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string           { return o.id }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Customer() string     { return o.details.Customer }
func (o *Order) Type() Type           { return o.details.Type }
func (o *Order) Status() Status       { return o.details.Status }
func (o *Order) Assigned() string     { return o.details.Assigned }
func (o *Order) PaymentType() string  { return o.details.PaymentType }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.details.Lines))
	copy(lines, o.details.Lines)
	return lines
}

// Delivery returns a copy of the delivery details, or nil for non-delivery orders.
func (o *Order) Delivery() *DeliveryDetails {
	if o.details.Delivery == nil {
		return nil
	}
	d := *o.details.Delivery
	return &d
}

// Details returns a deep copy of the mutable attributes.
func (o *Order) Details() Details {
	d := o.details
	d.Lines = o.Lines()
	d.Delivery = o.Delivery()
	return d
}

// Total returns Σ qty × price over all lines.
func (o *Order) Total() kernel.Money {
	total := kernel.Zero
	for _, line := range o.details.Lines {
		total = total.Add(line.Total())
	}
	return total
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	return &Order{
		id:            o.id,
		createdAt:     o.createdAt,
		details:       o.Details(),
		isConstructed: o.isConstructed,
	}
}

// Replace returns a new order with the same identity and creation time and
// the given details, validated like NewOrder.
func (o *Order) Replace(details Details) (*Order, error) {
	return NewOrder(o.id, o.createdAt, details)
}

// Apply merges the set fields of p into a copy of the order and validates the result.
func (o *Order) Apply(p Patch) (*Order, error) {
	return o.Replace(p.mergeInto(o.Details()))
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setDetails(details Details) error {
	details = normalize(details)

	var validationErrs []error
	if err := details.Type.Validate(); err != nil {
		validationErrs = append(validationErrs, err)
	}
	if err := details.Status.Validate(); err != nil {
		validationErrs = append(validationErrs, err)
	}
	if len(details.Lines) == 0 {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("items"))
	}
	for _, line := range details.Lines {
		if _, err := NewLine(line.itemID, line.name, line.price, line.qty); err != nil {
			validationErrs = append(validationErrs, err)
		}
	}
	if len(validationErrs) > 0 {
		return errors.Join(validationErrs...)
	}

	o.details = details
	return nil
}

// normalize copies the details and enforces the delivery invariant.
func normalize(details Details) Details {
	lines := make([]Line, len(details.Lines))
	copy(lines, details.Lines)
	details.Lines = lines

	switch {
	case details.Type != Delivery:
		details.Delivery = nil
	case details.Delivery == nil:
		details.Delivery = &DeliveryDetails{}
	default:
		d := *details.Delivery
		details.Delivery = &d
	}
	return details
}
