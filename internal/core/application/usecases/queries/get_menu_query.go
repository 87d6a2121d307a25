package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
	ErrGetShopProfileQueryIsNotConstructed = errors.New(
		"GetShopProfileQuery must be created via NewGetShopProfileQuery constructor",
	)
)

type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryHandler struct {
	menu MenuReader
}

func NewGetMenuQueryHandler(menu MenuReader) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.menu.Items(), nil
}

type GetShopProfileQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShopProfileQuery() GetShopProfileQuery {
	return GetShopProfileQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShopProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetShopProfileQueryIsNotConstructed)
}

type GetShopProfileQueryHandler struct {
	shop ShopReader
}

func NewGetShopProfileQueryHandler(shop ShopReader) GetShopProfileQueryHandler {
	return GetShopProfileQueryHandler{shop: shop}
}

func (h GetShopProfileQueryHandler) Handle(_ context.Context, query GetShopProfileQuery) (shop.Profile, error) {
	if err := query.Validate(); err != nil {
		return shop.Profile{}, err
	}
	return h.shop.Profile(), nil
}
