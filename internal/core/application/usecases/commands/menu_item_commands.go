package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSaveMenuItemCommandIsNotConstructed = errors.New(
		"SaveMenuItemCommand must be created via NewAddMenuItemCommand or NewUpdateMenuItemCommand",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// SaveMenuItemCommand adds a menu item (empty id) or updates an existing one.
type SaveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID string
	name   string
	price  kernel.Money

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(name string, price kernel.Money) (SaveMenuItemCommand, error) {
	return newSaveMenuItemCommand("", name, price)
}

func NewUpdateMenuItemCommand(itemID, name string, price kernel.Money) (SaveMenuItemCommand, error) {
	if itemID == "" {
		return SaveMenuItemCommand{}, errs.NewValueIsRequiredError("menuItemId")
	}
	return newSaveMenuItemCommand(itemID, name, price)
}

func newSaveMenuItemCommand(itemID, name string, price kernel.Money) (SaveMenuItemCommand, error) {
	// Reuse the item invariants with a placeholder id.
	if _, err := menu.NewItem("pending", name, price); err != nil {
		return SaveMenuItemCommand{}, err
	}
	return SaveMenuItemCommand{itemID: itemID, name: name, price: price, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrSaveMenuItemCommandIsNotConstructed)
}

func (c SaveMenuItemCommand) ItemID() string      { return c.itemID }
func (c SaveMenuItemCommand) Name() string        { return c.name }
func (c SaveMenuItemCommand) Price() kernel.Money { return c.price }

type SaveMenuItemCommandHandler struct {
	menu MenuCatalog
}

func NewSaveMenuItemCommandHandler(menu MenuCatalog) SaveMenuItemCommandHandler {
	return SaveMenuItemCommandHandler{menu: menu}
}

// Handle returns the stored item. Existing orders keep their copied lines.
func (h SaveMenuItemCommandHandler) Handle(ctx context.Context, cmd SaveMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}
	if cmd.ItemID() == "" {
		return h.menu.Add(ctx, cmd.Name(), cmd.Price())
	}
	return h.menu.Update(ctx, cmd.ItemID(), cmd.Name(), cmd.Price())
}

// DeleteMenuItemCommand removes an item from the menu.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID string

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(itemID string) (DeleteMenuItemCommand, error) {
	if itemID == "" {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredError("menuItemId")
	}
	return DeleteMenuItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ItemID() string { return c.itemID }

type DeleteMenuItemCommandHandler struct {
	menu MenuCatalog
}

func NewDeleteMenuItemCommandHandler(menu MenuCatalog) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{menu: menu}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.menu.Remove(ctx, cmd.ItemID())
}
