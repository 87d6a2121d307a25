package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant/internal/core/application/store"
	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	orders    *store.OrderStore
	completed *store.CompletionArchive
	menu      *store.MenuStore
	shop      *store.ShopStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	completed := store.NewCompletionArchive(archive.New(nil), time.UTC, kernel.FixedClock(now), discardLogger())
	return fixture{
		orders:    store.NewOrderStore(nil, completed, discardLogger()),
		completed: completed,
		menu:      store.NewMenuStore(menu.Default(), kernel.NewUUIDGenerator("M")),
		shop:      store.NewShopStore(shopProfile()),
	}
}

func soupOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine("m-soup", "Tomato Soup", kernel.NewMoney(5), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(id, now.Add(-time.Hour), order.Details{
		Customer: "Ana",
		Type:     order.DineIn,
		Lines:    []order.Line{line},
		Status:   status,
	})
	require.NoError(t, err)
	return o
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Get(id string) (*order.Order, error) {
	args := m.Called(id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) Upsert(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Error(1)
}

func (m *MockOrderStore) Patch(ctx context.Context, id string, p order.Patch) (*order.Order, error) {
	args := m.Called(ctx, id, p)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Error(1)
}

func (m *MockOrderStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
