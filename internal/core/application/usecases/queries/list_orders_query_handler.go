package queries

import (
	"context"

	"restaurant/internal/core/domain/services"
)

type ListOrdersQueryHandler struct {
	orders   OrderReader
	pageSize int
}

func NewListOrdersQueryHandler(orders OrderReader, pageSize int) ListOrdersQueryHandler {
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}
	return ListOrdersQueryHandler{orders: orders, pageSize: pageSize}
}

// Handle filters the live orders, sorts them newest first and returns the
// requested page.
func (h ListOrdersQueryHandler) Handle(_ context.Context, query ListOrdersQuery) (services.Page, error) {
	if err := query.Validate(); err != nil {
		return services.Page{}, err
	}

	visible := services.FilterOrders(h.orders.Snapshot(), query.Filter())
	return services.Paginate(visible, query.Page(), h.pageSize), nil
}
