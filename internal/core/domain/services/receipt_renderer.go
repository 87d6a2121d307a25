package services

import (
	"html/template"
	"io"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
)

const receiptTimeLayout = "2006-01-02 15:04"

// receiptTemplate relies on html/template contextual escaping for every user
// supplied value (& < > " ' are all escaped). The logo is the only value
// marked safe, and only after shop.Profile.Validate accepted it as a data:image URL.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.OrderID}}</title>
<style>
  body { font-family: monospace; margin: 0 auto; max-width: 80mm; }
  .shop { text-align: center; margin-bottom: 8px; }
  .shop img { max-width: 40mm; max-height: 20mm; }
  table { width: 100%; border-collapse: collapse; }
  thead { display: table-header-group; }
  tr { page-break-inside: avoid; break-inside: avoid; }
  th, td { text-align: left; padding: 2px 0; }
  td.num, th.num { text-align: right; }
  .totals td { font-weight: bold; }
</style>
</head>
<body>
<div class="shop">
{{- if .Logo}}
  <img src="{{.Logo}}" alt="logo">
{{- end}}
  <h2>{{.Shop.Name}}</h2>
  <div>{{.Shop.Address}}</div>
  <div>{{.Shop.Phone}}</div>
{{- if .Shop.TaxNumber}}
  <div>Tax No: {{.Shop.TaxNumber}}</div>
{{- end}}
</div>
<div class="meta">
  <div>Order: {{.OrderID}}</div>
  <div>Type: {{.Type}}</div>
{{- if .PaymentType}}
  <div>Payment: {{.PaymentType}}</div>
{{- end}}
  <div>Date: {{.Timestamp}}</div>
{{- if .Delivery}}
  <div>Deliver to: {{.Delivery.Name}}</div>
  <div>Phone: {{.Delivery.Phone}}</div>
  <div>Address: {{.Delivery.Address}}</div>
{{- if .Delivery.Note}}
  <div>Note: {{.Delivery.Note}}</div>
{{- end}}
{{- else}}
  <div>Customer: {{.Customer}}</div>
{{- end}}
</div>
<table>
  <thead>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr>
  </thead>
  <tbody>
{{- range .Lines}}
    <tr><td>{{.Name}}</td><td class="num">{{.Qty}}</td><td class="num">{{.Price}}</td><td class="num">{{.Total}}</td></tr>
{{- end}}
  </tbody>
  <tfoot>
    <tr class="totals"><td colspan="3">Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
    <tr class="totals"><td colspan="3">Total</td><td class="num">{{.GrandTotal}}</td></tr>
  </tfoot>
</table>
</body>
</html>
`))

// ReceiptLine is a rendered line-item row.
type ReceiptLine struct {
	Name  string
	Qty   int
	Price string
	Total string
}

// Receipt is the view model behind the printable receipt.
type Receipt struct {
	Shop        shop.Profile
	Logo        template.URL
	OrderID     string
	Type        string
	PaymentType string
	Timestamp   string
	Customer    string
	Delivery    *order.DeliveryDetails
	Lines       []ReceiptLine
	Subtotal    string
	GrandTotal  string

	// Adjustment is added to the subtotal to form the grand total. It is zero
	// until taxes or fees are introduced.
	Adjustment kernel.Money
}

// BuildReceipt assembles the receipt view model for o.
func BuildReceipt(o *order.Order, profile shop.Profile, loc *time.Location) Receipt {
	if loc == nil {
		loc = time.Local
	}

	r := Receipt{
		Shop:        profile,
		OrderID:     o.ID(),
		Type:        o.Type().String(),
		PaymentType: o.PaymentType(),
		Timestamp:   o.CreatedAt().In(loc).Format(receiptTimeLayout),
		Customer:    o.Customer(),
		Delivery:    o.Delivery(),
		Adjustment:  kernel.Zero,
	}
	if profile.HasLogo() && profile.Validate() == nil {
		r.Logo = template.URL(profile.Logo) //nolint:gosec // validated data:image URL
	}

	subtotal := kernel.Zero
	for _, line := range o.Lines() {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:  line.Name(),
			Qty:   line.Qty(),
			Price: line.Price().String(),
			Total: line.Total().String(),
		})
		subtotal = subtotal.Add(line.Total())
	}
	r.Subtotal = subtotal.String()
	r.GrandTotal = subtotal.Add(r.Adjustment).String()
	return r
}

// RenderReceipt writes a self-contained printable HTML receipt for o.
func RenderReceipt(w io.Writer, o *order.Order, profile shop.Profile, loc *time.Location) error {
	return receiptTemplate.Execute(w, BuildReceipt(o, profile, loc))
}
