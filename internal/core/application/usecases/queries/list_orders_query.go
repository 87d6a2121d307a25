package queries

import (
	"errors"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects one page of live orders.
//
// Example:
//
//	query, err := NewListOrdersQuery("Pending", "All", "ana", 1)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//	page, _ := handler.Handle(ctx, query)
//	fmt.Printf("page %d of %d\n", page.Page, page.TotalPages)
type ListOrdersQuery struct {
	filter services.OrderFilter
	page   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses display values for the status and type filters;
// empty strings and "All" disable them. Out-of-range pages are clamped.
func NewListOrdersQuery(status, orderType, search string, page int) (ListOrdersQuery, error) {
	filter, err := services.ParseOrderFilter(status, orderType, search)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() services.OrderFilter { return q.filter }
func (q ListOrdersQuery) Page() int                    { return q.page }
