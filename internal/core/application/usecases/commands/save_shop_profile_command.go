package commands

import (
	"context"
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/pkg/guard"
)

var ErrSaveShopProfileCommandIsNotConstructed = errors.New(
	"SaveShopProfileCommand must be created via NewSaveShopProfileCommand constructor",
)

// SaveShopProfileCommand replaces the shop profile printed on receipts.
type SaveShopProfileCommand struct { //nolint:recvcheck //using for validation
	profile shop.Profile

	guard guard.ConstructorGuard
}

func NewSaveShopProfileCommand(profile shop.Profile) (SaveShopProfileCommand, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if err := profile.Validate(); err != nil {
		return SaveShopProfileCommand{}, err
	}
	return SaveShopProfileCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveShopProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveShopProfileCommandIsNotConstructed)
}

func (c SaveShopProfileCommand) Profile() shop.Profile { return c.profile }

type SaveShopProfileCommandHandler struct {
	shop ShopProfiles
}

func NewSaveShopProfileCommandHandler(shop ShopProfiles) SaveShopProfileCommandHandler {
	return SaveShopProfileCommandHandler{shop: shop}
}

func (h SaveShopProfileCommandHandler) Handle(ctx context.Context, cmd SaveShopProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.shop.Save(ctx, cmd.Profile())
}
