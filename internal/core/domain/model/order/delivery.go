package order

// DeliveryDetails holds the recipient of a Delivery order.
type DeliveryDetails struct {
	Name    string
	Phone   string
	Address string
	Note    string
}
