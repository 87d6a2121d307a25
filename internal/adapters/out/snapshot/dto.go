// Package snapshot encodes the persisted structures as JSON documents and
// implements ports.StateRepository on top of any ports.BlobStorage.
package snapshot

import (
	"time"

	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
)

// OrderDTO is the stored form of an order.
type OrderDTO struct {
	ID          string       `json:"id"`
	Customer    string       `json:"customer"`
	Type        string       `json:"type"`
	Items       []LineDTO    `json:"items"`
	Status      string       `json:"status"`
	Assigned    string       `json:"assigned"`
	CreatedAt   time.Time    `json:"createdAt"`
	Delivery    *DeliveryDTO `json:"delivery,omitempty"`
	PaymentType string       `json:"paymentType,omitempty"`
}

// LineDTO is the stored form of an order line.
type LineDTO struct {
	ItemID string       `json:"itemId"`
	Name   string       `json:"name"`
	Price  kernel.Money `json:"price"`
	Qty    int          `json:"qty"`
}

type DeliveryDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// CompletedOrderDTO is an order snapshot plus its completion time.
type CompletedOrderDTO struct {
	OrderDTO
	CompletedAt time.Time `json:"completedAt"`
}

type MenuItemDTO struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price kernel.Money `json:"price"`
}

type ShopProfileDTO struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	TaxNumber string `json:"taxNumber"`
	Logo      string `json:"logo,omitempty"`
}

// OrderFromDomain converts an order to its stored form.
func OrderFromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	items := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, LineDTO{ItemID: l.ItemID(), Name: l.Name(), Price: l.Price(), Qty: l.Qty()})
	}

	var delivery *DeliveryDTO
	if d := o.Delivery(); d != nil {
		delivery = &DeliveryDTO{Name: d.Name, Phone: d.Phone, Address: d.Address, Note: d.Note}
	}

	return OrderDTO{
		ID:          o.ID(),
		Customer:    o.Customer(),
		Type:        o.Type().String(),
		Items:       items,
		Status:      o.Status().String(),
		Assigned:    o.Assigned(),
		CreatedAt:   o.CreatedAt(),
		Delivery:    delivery,
		PaymentType: o.PaymentType(),
	}
}

// toDomain restores an order permissively: unknown statuses read as Pending,
// unknown types as Dine-in and quantities below one as one.
func (dto OrderDTO) toDomain() (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		status = order.Pending
	}
	orderType, err := order.ParseType(dto.Type)
	if err != nil {
		orderType = order.DineIn
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		lines = append(lines, order.RestoreLine(item.ItemID, item.Name, item.Price, item.Qty))
	}

	var delivery *order.DeliveryDetails
	if dto.Delivery != nil {
		delivery = &order.DeliveryDetails{
			Name:    dto.Delivery.Name,
			Phone:   dto.Delivery.Phone,
			Address: dto.Delivery.Address,
			Note:    dto.Delivery.Note,
		}
	}

	return order.RestoreOrder(dto.ID, dto.CreatedAt, order.Details{
		Customer:    dto.Customer,
		Type:        orderType,
		Lines:       lines,
		Status:      status,
		Assigned:    dto.Assigned,
		Delivery:    delivery,
		PaymentType: dto.PaymentType,
	})
}

func completedFromDomain(r archive.Record) CompletedOrderDTO {
	return CompletedOrderDTO{OrderDTO: OrderFromDomain(r.Order()), CompletedAt: r.CompletedAt()}
}

func (dto CompletedOrderDTO) toDomain() (archive.Record, error) {
	o, err := dto.OrderDTO.toDomain()
	if err != nil {
		return archive.Record{}, err
	}
	return archive.NewRecord(o, dto.CompletedAt)
}

func menuFromDomain(m *menu.Menu) []MenuItemDTO {
	items := m.Items()
	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, MenuItemDTO{ID: item.ID(), Name: item.Name(), Price: item.Price()})
	}
	return dtos
}

func menuToDomain(dtos []MenuItemDTO) (*menu.Menu, error) {
	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menu.NewItem(dto.ID, dto.Name, dto.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return menu.NewMenu(items)
}

func shopFromDomain(p shop.Profile) ShopProfileDTO {
	return ShopProfileDTO{Name: p.Name, Address: p.Address, Phone: p.Phone, TaxNumber: p.TaxNumber, Logo: p.Logo}
}

func (dto ShopProfileDTO) toDomain() shop.Profile {
	return shop.Profile{Name: dto.Name, Address: dto.Address, Phone: dto.Phone, TaxNumber: dto.TaxNumber, Logo: dto.Logo}
}
