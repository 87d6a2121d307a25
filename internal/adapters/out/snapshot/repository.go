package snapshot

import (
	"context"
	"encoding/json"

	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// BlobRepository stores each structure as one JSON document under its key.
type BlobRepository struct {
	storage ports.BlobStorage
}

var _ ports.StateRepository = (*BlobRepository)(nil)

func NewBlobRepository(storage ports.BlobStorage) *BlobRepository {
	return &BlobRepository{storage: storage}
}

func (r *BlobRepository) LoadOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.load(ctx, ports.OrdersKey, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, errs.NewPersistenceUnavailableError(string(ports.OrdersKey), err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *BlobRepository) SaveOrders(ctx context.Context, orders []*order.Order) error {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, OrderFromDomain(o))
	}
	return r.save(ctx, ports.OrdersKey, dtos)
}

func (r *BlobRepository) LoadCompletedOrders(ctx context.Context) ([]archive.Record, error) {
	var dtos []CompletedOrderDTO
	if err := r.load(ctx, ports.CompletedOrdersKey, &dtos); err != nil {
		return nil, err
	}

	records := make([]archive.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := dto.toDomain()
		if err != nil {
			return nil, errs.NewPersistenceUnavailableError(string(ports.CompletedOrdersKey), err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *BlobRepository) SaveCompletedOrders(ctx context.Context, records []archive.Record) error {
	dtos := make([]CompletedOrderDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, completedFromDomain(record))
	}
	return r.save(ctx, ports.CompletedOrdersKey, dtos)
}

func (r *BlobRepository) LoadMenu(ctx context.Context) (*menu.Menu, error) {
	var dtos []MenuItemDTO
	if err := r.load(ctx, ports.MenuKey, &dtos); err != nil {
		return nil, err
	}

	m, err := menuToDomain(dtos)
	if err != nil {
		return nil, errs.NewPersistenceUnavailableError(string(ports.MenuKey), err)
	}
	return m, nil
}

func (r *BlobRepository) SaveMenu(ctx context.Context, m *menu.Menu) error {
	return r.save(ctx, ports.MenuKey, menuFromDomain(m))
}

func (r *BlobRepository) LoadShopProfile(ctx context.Context) (shop.Profile, error) {
	var dto ShopProfileDTO
	if err := r.load(ctx, ports.ShopProfileKey, &dto); err != nil {
		return shop.Profile{}, err
	}
	return dto.toDomain(), nil
}

func (r *BlobRepository) SaveShopProfile(ctx context.Context, p shop.Profile) error {
	return r.save(ctx, ports.ShopProfileKey, shopFromDomain(p))
}

func (r *BlobRepository) load(ctx context.Context, key ports.Key, dst any) error {
	blob, found, err := r.storage.Load(ctx, key)
	if err != nil {
		return errs.NewPersistenceUnavailableError(string(key), err)
	}
	if !found {
		return errs.NewObjectNotFoundError("key", string(key))
	}
	if err = json.Unmarshal(blob, dst); err != nil {
		return errs.NewPersistenceUnavailableError(string(key), err)
	}
	return nil
}

func (r *BlobRepository) save(ctx context.Context, key ports.Key, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err = r.storage.Save(ctx, key, blob); err != nil {
		return errs.NewPersistenceUnavailableError(string(key), err)
	}
	return nil
}
