// Package queries contains read operations over the restaurant state. Query
// handlers never mutate a store; they derive views from store snapshots.
package queries

import (
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
)

type (
	// OrderReader exposes the live orders.
	OrderReader interface {
		Snapshot() []*order.Order
		Get(id string) (*order.Order, error)
	}

	// CompletedReader exposes the completion archive.
	CompletedReader interface {
		GroupedByDay() []archive.DayGroup
	}

	MenuReader interface {
		Items() []menu.Item
	}

	ShopReader interface {
		Profile() shop.Profile
	}
)
