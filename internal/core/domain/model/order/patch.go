package order

// Patch is a partial update. Nil fields are left unchanged; a nil Lines slice
// keeps the current lines.
type Patch struct {
	Customer    *string
	Type        *Type
	Lines       []Line
	Status      *Status
	Assigned    *string
	Delivery    *DeliveryDetails
	PaymentType *string
}

// StatusPatch is a shorthand for the most common patch.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Customer == nil && p.Type == nil && p.Lines == nil && p.Status == nil &&
		p.Assigned == nil && p.Delivery == nil && p.PaymentType == nil
}

func (p Patch) mergeInto(d Details) Details {
	if p.Customer != nil {
		d.Customer = *p.Customer
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Lines != nil {
		d.Lines = p.Lines
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Assigned != nil {
		d.Assigned = *p.Assigned
	}
	if p.Delivery != nil {
		d.Delivery = p.Delivery
	}
	if p.PaymentType != nil {
		d.PaymentType = *p.PaymentType
	}
	return d
}
