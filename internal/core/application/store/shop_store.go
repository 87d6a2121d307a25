package store

import (
	"context"
	"sync"

	"restaurant/internal/core/domain/model/shop"
)

// ShopStore owns the singleton shop profile.
type ShopStore struct {
	mu        sync.Mutex
	profile   shop.Profile
	listeners broadcaster[shop.Profile]
}

func NewShopStore(p shop.Profile) *ShopStore {
	return &ShopStore{profile: p}
}

func (s *ShopStore) Subscribe(l Listener[shop.Profile]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners.add(l)
}

func (s *ShopStore) Profile() shop.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *ShopStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listeners.revision
}

// Restore replaces the profile unless it changed after revision was read.
func (s *ShopStore) Restore(ctx context.Context, p shop.Profile, revision uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners.revision != revision {
		return false
	}
	s.profile = p
	s.listeners.notify(ctx, p)
	return true
}

// Save replaces the profile after validating it.
func (s *ShopStore) Save(ctx context.Context, p shop.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.listeners.notify(ctx, p)
	return nil
}
