package appstate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/application/store"
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/shop"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// Options tune how the state is built.
type Options struct {
	Location *time.Location
	Clock    kernel.Clock
	MenuIDs  kernel.IDGenerator
}

// State is the application state shared by all use cases.
type State struct {
	Orders    *store.OrderStore
	Completed *store.CompletionArchive
	Menu      *store.MenuStore
	Shop      *store.ShopStore

	repo   ports.StateRepository
	logger *slog.Logger

	mu   sync.Mutex
	held map[ports.Key]struct{}
}

// Load reads every structure from repo, substituting defaults for anything
// missing or unreadable.
//
// A structure whose saved copy exists but could not be read is held: SaveAll
// does not write its defaults over the saved copy until the structure is
// changed or a later reload succeeds.
func Load(ctx context.Context, repo ports.StateRepository, opts Options, logger *slog.Logger) *State {
	base := logger
	logger = logger.With("component", "app_state")
	if opts.MenuIDs == nil {
		opts.MenuIDs = kernel.NewUUIDGenerator("M")
	}

	held := make(map[ports.Key]struct{})
	fallback := func(key ports.Key, err error) {
		if errors.Is(err, errs.ErrObjectNotFound) {
			logger.InfoContext(ctx, "Nothing saved yet, using defaults", "key", string(key))
			return
		}
		logger.WarnContext(ctx, "Saved state unreadable, using defaults until it can be reloaded",
			"key", string(key), "error", err)
		held[key] = struct{}{}
	}

	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		fallback(ports.OrdersKey, err)
		orders = []*order.Order{}
	}

	records, err := repo.LoadCompletedOrders(ctx)
	if err != nil {
		fallback(ports.CompletedOrdersKey, err)
		records = []archive.Record{}
	}

	m, err := repo.LoadMenu(ctx)
	if err != nil {
		fallback(ports.MenuKey, err)
		m = menu.Default()
	}

	profile, err := repo.LoadShopProfile(ctx)
	if err != nil {
		fallback(ports.ShopProfileKey, err)
		profile = shop.Blank()
	}

	completed := store.NewCompletionArchive(archive.New(records), opts.Location, opts.Clock, base)
	s := &State{
		Orders:    store.NewOrderStore(orders, completed, base),
		Completed: completed,
		Menu:      store.NewMenuStore(m, opts.MenuIDs),
		Shop:      store.NewShopStore(profile),
		repo:      repo,
		logger:    logger,
		held:      held,
	}
	s.releaseOnChange()

	logger.InfoContext(ctx, "State loaded",
		"orders", len(orders),
		"completed_orders", len(records),
		"menu_items", len(m.Items()),
	)
	return s
}

// releaseOnChange lifts the hold on a structure once it is mutated; the
// mutation is then the state worth saving.
func (s *State) releaseOnChange() {
	s.Orders.Subscribe(func(context.Context, []*order.Order) { s.release(ports.OrdersKey) })
	s.Completed.Subscribe(func(context.Context, []archive.Record) { s.release(ports.CompletedOrdersKey) })
	s.Menu.Subscribe(func(context.Context, *menu.Menu) { s.release(ports.MenuKey) })
	s.Shop.Subscribe(func(context.Context, shop.Profile) { s.release(ports.ShopProfileKey) })
}

func (s *State) release(key ports.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, key)
}

func (s *State) isHeld(key ports.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.held[key]
	return ok
}

// Held returns the keys whose saved copy is protected from being overwritten.
func (s *State) Held() []ports.Key {
	keys := make([]ports.Key, 0, len(ports.Keys()))
	for _, key := range ports.Keys() {
		if s.isHeld(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Reload retries every held structure. A structure that loads is put back
// into its store unless the store changed meanwhile; either way it is
// released. A structure that is gone from storage is released as well.
func (s *State) Reload(ctx context.Context) error {
	var reloadErrs []error
	for _, key := range s.Held() {
		err := s.reload(ctx, key)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "Saved state reloaded", "key", string(key))
		case errors.Is(err, errs.ErrObjectNotFound):
			s.logger.InfoContext(ctx, "Saved state is gone, keeping defaults", "key", string(key))
		default:
			reloadErrs = append(reloadErrs, err)
			continue
		}
		s.release(key)
	}
	return errors.Join(reloadErrs...)
}

func (s *State) reload(ctx context.Context, key ports.Key) error {
	switch key {
	case ports.OrdersKey:
		revision := s.Orders.Revision()
		orders, err := s.repo.LoadOrders(ctx)
		if err != nil {
			return err
		}
		s.Orders.Restore(ctx, orders, revision)
	case ports.CompletedOrdersKey:
		revision := s.Completed.Revision()
		records, err := s.repo.LoadCompletedOrders(ctx)
		if err != nil {
			return err
		}
		s.Completed.Restore(ctx, records, revision)
	case ports.MenuKey:
		revision := s.Menu.Revision()
		m, err := s.repo.LoadMenu(ctx)
		if err != nil {
			return err
		}
		s.Menu.Restore(ctx, m, revision)
	case ports.ShopProfileKey:
		revision := s.Shop.Revision()
		profile, err := s.repo.LoadShopProfile(ctx)
		if err != nil {
			return err
		}
		s.Shop.Restore(ctx, profile, revision)
	}
	return nil
}

// BindPersistence schedules a save on p after every mutation of any store.
func (s *State) BindPersistence(p *Persister) {
	s.Orders.Subscribe(func(_ context.Context, snapshot []*order.Order) {
		p.Schedule(ports.OrdersKey, func(ctx context.Context) error {
			return s.repo.SaveOrders(ctx, snapshot)
		})
	})
	s.Completed.Subscribe(func(_ context.Context, snapshot []archive.Record) {
		p.Schedule(ports.CompletedOrdersKey, func(ctx context.Context) error {
			return s.repo.SaveCompletedOrders(ctx, snapshot)
		})
	})
	s.Menu.Subscribe(func(_ context.Context, snapshot *menu.Menu) {
		p.Schedule(ports.MenuKey, func(ctx context.Context) error {
			return s.repo.SaveMenu(ctx, snapshot)
		})
	})
	s.Shop.Subscribe(func(_ context.Context, snapshot shop.Profile) {
		p.Schedule(ports.ShopProfileKey, func(ctx context.Context) error {
			return s.repo.SaveShopProfile(ctx, snapshot)
		})
	})
}

// SaveAll reloads held structures, then writes every structure that is not
// held. Each save is attempted even when an earlier one fails; the failures
// are joined.
func (s *State) SaveAll(ctx context.Context) error {
	saves := []error{s.Reload(ctx)}
	save := func(key ports.Key, fn func() error) {
		if s.isHeld(key) {
			s.logger.InfoContext(ctx, "Save skipped, saved copy not reloaded yet", "key", string(key))
			return
		}
		saves = append(saves, fn())
	}

	save(ports.OrdersKey, func() error { return s.repo.SaveOrders(ctx, s.Orders.Snapshot()) })
	save(ports.CompletedOrdersKey, func() error { return s.repo.SaveCompletedOrders(ctx, s.Completed.Records()) })
	save(ports.MenuKey, func() error { return s.repo.SaveMenu(ctx, s.Menu.Snapshot()) })
	save(ports.ShopProfileKey, func() error { return s.repo.SaveShopProfile(ctx, s.Shop.Profile()) })

	err := errors.Join(saves...)
	if err != nil {
		s.logger.WarnContext(ctx, "Saving state failed", "error", err)
	}
	return err
}
