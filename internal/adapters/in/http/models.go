package http

import (
	"errors"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/domain/services"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

type Selection struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Customer    string      `json:"customer"`
	Type        string      `json:"type"`
	Items       []Selection `json:"items"`
	Status      string      `json:"status"`
	Assigned    string      `json:"assigned"`
	Delivery    *Delivery   `json:"delivery"`
	PaymentType string      `json:"paymentType"`
}

type Line struct {
	ItemID string       `json:"itemId"`
	Name   string       `json:"name"`
	Price  kernel.Money `json:"price"`
	Qty    int          `json:"qty"`
	Total  kernel.Money `json:"total"`
}

// OrderBody is the body of PUT /api/v1/orders/:id, a full replacement.
type OrderBody struct {
	Customer    string    `json:"customer"`
	Type        string    `json:"type"`
	Items       []Line    `json:"items"`
	Status      string    `json:"status"`
	Assigned    string    `json:"assigned"`
	Delivery    *Delivery `json:"delivery"`
	PaymentType string    `json:"paymentType"`
}

// OrderPatch is the body of PATCH /api/v1/orders/:id; absent fields are kept.
type OrderPatch struct {
	Customer    *string   `json:"customer"`
	Type        *string   `json:"type"`
	Items       *[]Line   `json:"items"`
	Status      *string   `json:"status"`
	Assigned    *string   `json:"assigned"`
	Delivery    *Delivery `json:"delivery"`
	PaymentType *string   `json:"paymentType"`
}

type Order struct {
	ID          string       `json:"id"`
	Customer    string       `json:"customer"`
	Type        string       `json:"type"`
	Items       []Line       `json:"items"`
	Status      string       `json:"status"`
	Assigned    string       `json:"assigned"`
	CreatedAt   time.Time    `json:"createdAt"`
	Delivery    *Delivery    `json:"delivery,omitempty"`
	PaymentType string       `json:"paymentType,omitempty"`
	Total       kernel.Money `json:"total"`
}

type OrdersPage struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
	TotalCount int     `json:"totalCount"`
}

type CompletedOrder struct {
	Order
	CompletedAt time.Time `json:"completedAt"`
}

type CompletedDay struct {
	Day    string           `json:"day"`
	Total  kernel.Money     `json:"total"`
	Orders []CompletedOrder `json:"orders"`
}

type Removed struct {
	Removed int `json:"removed"`
}

type HourlyBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MenuItem struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price kernel.Money `json:"price"`
}

type ShopProfile struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	TaxNumber string `json:"taxNumber"`
	Logo      string `json:"logo"`
}

func toOrder(o *order.Order) Order {
	lines := o.Lines()
	items := make([]Line, 0, len(lines))
	for _, l := range lines {
		items = append(items, Line{ItemID: l.ItemID(), Name: l.Name(), Price: l.Price(), Qty: l.Qty(), Total: l.Total()})
	}

	var delivery *Delivery
	if d := o.Delivery(); d != nil {
		delivery = &Delivery{Name: d.Name, Phone: d.Phone, Address: d.Address, Note: d.Note}
	}

	return Order{
		ID:          o.ID(),
		Customer:    o.Customer(),
		Type:        o.Type().String(),
		Items:       items,
		Status:      o.Status().String(),
		Assigned:    o.Assigned(),
		CreatedAt:   o.CreatedAt(),
		Delivery:    delivery,
		PaymentType: o.PaymentType(),
		Total:       o.Total(),
	}
}

func toOrdersPage(p services.Page) OrdersPage {
	orders := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, toOrder(o))
	}
	return OrdersPage{
		Orders:     orders,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		TotalCount: p.TotalCount,
	}
}

func toCompletedDays(groups []archive.DayGroup) []CompletedDay {
	days := make([]CompletedDay, 0, len(groups))
	for _, g := range groups {
		records := make([]CompletedOrder, 0, len(g.Records))
		for _, r := range g.Records {
			records = append(records, CompletedOrder{Order: toOrder(r.Order()), CompletedAt: r.CompletedAt()})
		}
		days = append(days, CompletedDay{Day: g.Day, Total: g.Total, Orders: records})
	}
	return days
}

func toMenuItem(item menu.Item) MenuItem {
	return MenuItem{ID: item.ID(), Name: item.Name(), Price: item.Price()}
}

func toShopProfile(p shop.Profile) ShopProfile {
	return ShopProfile{Name: p.Name, Address: p.Address, Phone: p.Phone, TaxNumber: p.TaxNumber, Logo: p.Logo}
}

func (p ShopProfile) toDomain() shop.Profile {
	return shop.Profile{Name: p.Name, Address: p.Address, Phone: p.Phone, TaxNumber: p.TaxNumber, Logo: p.Logo}
}

func (d *Delivery) toDomain() *order.DeliveryDetails {
	if d == nil {
		return nil
	}
	return &order.DeliveryDetails{Name: d.Name, Phone: d.Phone, Address: d.Address, Note: d.Note}
}

// parseStatus treats an empty value as "not given".
func parseStatus(s string) (order.Status, error) {
	if s == "" {
		return order.Unknown, nil
	}
	return order.ParseStatus(s)
}

func (b NewOrder) toInput() (commands.NewOrderInput, error) {
	orderType, typeErr := order.ParseType(b.Type)
	status, statusErr := parseStatus(b.Status)
	if err := errors.Join(typeErr, statusErr); err != nil {
		return commands.NewOrderInput{}, err
	}

	selections := make([]commands.Selection, 0, len(b.Items))
	for _, s := range b.Items {
		selections = append(selections, commands.Selection{ItemID: s.ItemID, Qty: s.Qty})
	}

	return commands.NewOrderInput{
		Customer:    b.Customer,
		Type:        orderType,
		Selections:  selections,
		Status:      status,
		Assigned:    b.Assigned,
		Delivery:    b.Delivery.toDomain(),
		PaymentType: b.PaymentType,
	}, nil
}

func toLines(items []Line) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))
	var lineErrs []error
	for _, item := range items {
		line, err := order.NewLine(item.ItemID, item.Name, item.Price, item.Qty)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Join(lineErrs...)
}

func (b OrderBody) toDetails() (order.Details, error) {
	orderType, typeErr := order.ParseType(b.Type)
	status, statusErr := order.ParseStatus(b.Status)
	lines, linesErr := toLines(b.Items)
	if err := errors.Join(typeErr, statusErr, linesErr); err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Customer:    b.Customer,
		Type:        orderType,
		Lines:       lines,
		Status:      status,
		Assigned:    b.Assigned,
		Delivery:    b.Delivery.toDomain(),
		PaymentType: b.PaymentType,
	}, nil
}

func (b OrderPatch) toPatch() (order.Patch, error) {
	p := order.Patch{
		Customer:    b.Customer,
		Assigned:    b.Assigned,
		Delivery:    b.Delivery.toDomain(),
		PaymentType: b.PaymentType,
	}

	var parseErrs []error
	if b.Type != nil {
		t, err := order.ParseType(*b.Type)
		parseErrs = append(parseErrs, err)
		p.Type = &t
	}
	if b.Status != nil {
		s, err := order.ParseStatus(*b.Status)
		parseErrs = append(parseErrs, err)
		p.Status = &s
	}
	if b.Items != nil {
		lines, err := toLines(*b.Items)
		parseErrs = append(parseErrs, err)
		p.Lines = lines
	}
	return p, errors.Join(parseErrs...)
}
