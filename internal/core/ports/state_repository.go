package ports

import (
	"context"

	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
)

// StateRepository loads and saves the four persisted structures. Each Load
// returns errs.ErrObjectNotFound when nothing was saved yet and
// errs.ErrPersistenceUnavailable when the blob cannot be read or decoded;
// callers fall back to defaults in both cases.
type StateRepository interface {
	LoadOrders(ctx context.Context) ([]*order.Order, error)
	SaveOrders(ctx context.Context, orders []*order.Order) error

	LoadCompletedOrders(ctx context.Context) ([]archive.Record, error)
	SaveCompletedOrders(ctx context.Context, records []archive.Record) error

	LoadMenu(ctx context.Context) (*menu.Menu, error)
	SaveMenu(ctx context.Context, m *menu.Menu) error

	LoadShopProfile(ctx context.Context) (shop.Profile, error)
	SaveShopProfile(ctx context.Context, p shop.Profile) error
}
