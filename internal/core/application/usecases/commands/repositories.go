// Package commands contains the operations that change the restaurant state.
// Every command is built through its constructor, which validates the input;
// the matching handler applies it to the stores and returns the result.
package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/ports"
)

// Store interfaces the handlers depend on. The application stores in
// package store implement them.
type (
	// OrderStore holds the live orders.
	OrderStore interface {
		Get(id string) (*order.Order, error)
		Upsert(ctx context.Context, o *order.Order) (*order.Order, error)
		Patch(ctx context.Context, id string, p order.Patch) (*order.Order, error)
		Delete(ctx context.Context, id string) error
	}

	// CompletedOrders holds the completion archive.
	CompletedOrders interface {
		Remove(ctx context.Context, id string) error
		RemoveDay(ctx context.Context, day string, confirm ports.ConfirmFunc) (int, error)
		Clear(ctx context.Context, confirm ports.ConfirmFunc) (int, error)
	}

	// MenuCatalog holds the menu.
	MenuCatalog interface {
		Find(id string) (menu.Item, bool)
		Add(ctx context.Context, name string, price kernel.Money) (menu.Item, error)
		Update(ctx context.Context, id, name string, price kernel.Money) (menu.Item, error)
		Remove(ctx context.Context, id string) error
	}

	// ShopProfiles holds the shop profile.
	ShopProfiles interface {
		Profile() shop.Profile
		Save(ctx context.Context, p shop.Profile) error
	}
)
