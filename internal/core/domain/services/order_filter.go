package services

import (
	"sort"
	"strings"

	"restaurant/internal/core/domain/model/order"
)

// AllFilter is the display value that disables a status or type filter.
const AllFilter = "All"

// DefaultPageSize is the number of orders shown per page.
const DefaultPageSize = 10

// OrderFilter selects live orders. A zero Status or Type matches everything.
type OrderFilter struct {
	Status order.Status
	Type   order.Type
	Query  string
}

// ParseOrderFilter builds a filter from display values; "" and "All" disable a filter.
func ParseOrderFilter(status, orderType, query string) (OrderFilter, error) {
	f := OrderFilter{Query: query}
	if status != "" && status != AllFilter {
		s, err := order.ParseStatus(status)
		if err != nil {
			return OrderFilter{}, err
		}
		f.Status = s
	}
	if orderType != "" && orderType != AllFilter {
		t, err := order.ParseType(orderType)
		if err != nil {
			return OrderFilter{}, err
		}
		f.Type = t
	}
	return f, nil
}

// Matches applies the status, type and text conditions together.
func (f OrderFilter) Matches(o *order.Order) bool {
	if f.Status != order.Unknown && o.Status() != f.Status {
		return false
	}
	if f.Type != order.UnknownType && o.Type() != f.Type {
		return false
	}
	return matchesQuery(o, strings.ToLower(strings.TrimSpace(f.Query)))
}

func matchesQuery(o *order.Order, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.ID()), q) || strings.Contains(strings.ToLower(o.Customer()), q) {
		return true
	}
	for _, line := range o.Lines() {
		if strings.Contains(strings.ToLower(line.Name()), q) {
			return true
		}
	}
	return false
}

// FilterOrders returns the matching orders sorted by creation time, newest
// first. Orders created at the same instant keep their input order.
func FilterOrders(orders []*order.Order, f OrderFilter) []*order.Order {
	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			matched = append(matched, o)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})
	return matched
}

// Page is one page of filtered orders.
type Page struct {
	Orders     []*order.Order
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
}

// Paginate slices orders into fixed-size pages. The requested page is clamped
// to [1, TotalPages] and TotalPages is never below 1.
func Paginate(orders []*order.Order, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := max(1, (len(orders)+pageSize-1)/pageSize)
	page = min(max(page, 1), totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(orders))
	return Page{
		Orders:     orders[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: len(orders),
	}
}
