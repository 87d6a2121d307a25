package queries

import (
	"bytes"
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery renders the printable receipt of one live order.
type GetReceiptQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetReceiptQuery(orderID string) (GetReceiptQuery, error) {
	if orderID == "" {
		return GetReceiptQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetReceiptQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

func (q GetReceiptQuery) OrderID() string { return q.orderID }

type GetReceiptQueryHandler struct {
	orders OrderReader
	shop   ShopReader
	loc    *time.Location
}

func NewGetReceiptQueryHandler(orders OrderReader, shop ShopReader, loc *time.Location) GetReceiptQueryHandler {
	if loc == nil {
		loc = time.Local
	}
	return GetReceiptQueryHandler{orders: orders, shop: shop, loc: loc}
}

// Handle returns a complete HTML document.
func (h GetReceiptQueryHandler) Handle(_ context.Context, query GetReceiptQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(query.OrderID())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = services.RenderReceipt(&buf, o, h.shop.Profile(), h.loc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
