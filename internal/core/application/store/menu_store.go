package store

import (
	"context"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// MenuStore owns the menu catalogue.
type MenuStore struct {
	mu        sync.Mutex
	menu      *menu.Menu
	ids       kernel.IDGenerator
	listeners broadcaster[*menu.Menu]
}

func NewMenuStore(m *menu.Menu, ids kernel.IDGenerator) *MenuStore {
	if m == nil {
		m = menu.Default()
	}
	return &MenuStore{menu: m.Clone(), ids: ids}
}

func (s *MenuStore) Subscribe(l Listener[*menu.Menu]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners.add(l)
}

func (s *MenuStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listeners.revision
}

// Restore replaces the catalogue unless it changed after revision was read.
func (s *MenuStore) Restore(ctx context.Context, m *menu.Menu, revision uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners.revision != revision {
		return false
	}
	s.menu = m.Clone()
	s.listeners.notify(ctx, s.menu.Clone())
	return true
}

// Snapshot returns a copy of the catalogue.
func (s *MenuStore) Snapshot() *menu.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Clone()
}

func (s *MenuStore) Items() []menu.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Items()
}

func (s *MenuStore) Find(id string) (menu.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Find(id)
}

// Add appends a new item under a generated id.
func (s *MenuStore) Add(ctx context.Context, name string, price kernel.Money) (menu.Item, error) {
	item, err := menu.NewItem(s.ids.NewID(), name, price)
	if err != nil {
		return menu.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu.Put(item)
	s.listeners.notify(ctx, s.menu.Clone())
	return item, nil
}

// Update replaces the name and price of an existing item. Orders already
// holding the item keep their copied name and price.
func (s *MenuStore) Update(ctx context.Context, id, name string, price kernel.Money) (menu.Item, error) {
	item, err := menu.NewItem(id, name, price)
	if err != nil {
		return menu.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menu.Find(id); !ok {
		return menu.Item{}, errs.NewObjectNotFoundError("menuItemId", id)
	}
	s.menu.Put(item)
	s.listeners.notify(ctx, s.menu.Clone())
	return item, nil
}

func (s *MenuStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.menu.Remove(id); err != nil {
		return err
	}
	s.listeners.notify(ctx, s.menu.Clone())
	return nil
}
