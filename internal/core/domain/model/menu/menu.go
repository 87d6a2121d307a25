// Package menu provides the restaurant menu: the catalogue order lines are
// copied from. Menu items have a lifecycle independent of orders.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Item is a sellable menu entry.
type Item struct {
	id    string
	name  string
	price kernel.Money
}

// NewItem creates a validated menu item.
func NewItem(id, name string, price kernel.Money) (Item, error) {
	var validationErrs []error
	if id == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("menu item id"))
	}
	if strings.TrimSpace(name) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("menu item name"))
	}
	if price.IsNegative() {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price)))
	}
	if len(validationErrs) > 0 {
		return Item{}, errors.Join(validationErrs...)
	}
	return Item{id: id, name: strings.TrimSpace(name), price: price}, nil
}

func (i Item) ID() string          { return i.id }
func (i Item) Name() string        { return i.name }
func (i Item) Price() kernel.Money { return i.price }

// Menu is an ordered collection of items.
type Menu struct {
	items []Item
}

// NewMenu builds a menu from items, rejecting duplicate identifiers.
func NewMenu(items []Item) (*Menu, error) {
	m := &Menu{}
	for _, item := range items {
		if _, ok := m.Find(item.ID()); ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu", fmt.Errorf("duplicate item id %s", item.ID()))
		}
		m.items = append(m.items, item)
	}
	return m, nil
}

// Default returns the menu a fresh installation starts with.
func Default() *Menu {
	seed := []struct {
		id    string
		name  string
		price float64
	}{
		{"m-margherita", "Margherita Pizza", 8.50},
		{"m-pepperoni", "Pepperoni Pizza", 9.50},
		{"m-burger", "Classic Burger", 7.90},
		{"m-caesar", "Caesar Salad", 6.00},
		{"m-soup", "Tomato Soup", 5.00},
		{"m-fries", "French Fries", 3.00},
		{"m-lemonade", "Lemonade", 2.50},
		{"m-espresso", "Espresso", 1.80},
	}

	m := &Menu{}
	for _, s := range seed {
		m.items = append(m.items, Item{id: s.id, name: s.name, price: kernel.NewMoney(s.price)})
	}
	return m
}

// Items returns a copy of the menu items in display order.
func (m *Menu) Items() []Item {
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// Find returns the item with the given id.
func (m *Menu) Find(id string) (Item, bool) {
	for _, item := range m.items {
		if item.id == id {
			return item, true
		}
	}
	return Item{}, false
}

// Put appends a new item or replaces the item with the same id in place.
func (m *Menu) Put(item Item) {
	for i := range m.items {
		if m.items[i].id == item.id {
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, item)
}

// Remove deletes the item with the given id.
func (m *Menu) Remove(id string) error {
	for i := range m.items {
		if m.items[i].id == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("menuItemId", id)
}

// Clone returns an independent copy of the menu.
func (m *Menu) Clone() *Menu {
	return &Menu{items: m.Items()}
}
