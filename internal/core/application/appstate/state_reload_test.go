package appstate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/adapters/out/snapshot"
	"restaurant/internal/core/application/appstate"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStorage fails the next n loads of a key.
type flakyStorage struct {
	ports.BlobStorage

	mu       sync.Mutex
	failures map[ports.Key]int
}

func (s *flakyStorage) Load(ctx context.Context, key ports.Key) ([]byte, bool, error) {
	s.mu.Lock()
	if s.failures[key] > 0 {
		s.failures[key]--
		s.mu.Unlock()
		return nil, false, errors.New("connection reset")
	}
	s.mu.Unlock()
	return s.BlobStorage.Load(ctx, key)
}

func seededStorage(t *testing.T, ordersFailures int) (*flakyStorage, *snapshot.BlobRepository) {
	t.Helper()
	backing := memory.NewBlobStorage()
	require.NoError(t, snapshot.NewBlobRepository(backing).SaveOrders(t.Context(), []*order.Order{
		newOrder(t, "A", order.Pending),
		newOrder(t, "B", order.Ready),
	}))
	storage := &flakyStorage{BlobStorage: backing, failures: map[ports.Key]int{ports.OrdersKey: ordersFailures}}
	return storage, snapshot.NewBlobRepository(backing)
}

func TestSaveAll_KeepsSavedCopyThatFailedToLoad(t *testing.T) {
	ctx := t.Context()
	storage, saved := seededStorage(t, 2)

	s := appstate.Load(ctx, snapshot.NewBlobRepository(storage), appstate.Options{Location: time.UTC}, discardLogger())
	assert.Empty(t, s.Orders.Snapshot())
	assert.Equal(t, []ports.Key{ports.OrdersKey}, s.Held())

	// The reload inside this save still fails, so the orders stay untouched.
	err := s.SaveAll(ctx)
	require.ErrorIs(t, err, errs.ErrPersistenceUnavailable)

	orders, err := saved.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// The next save reloads them into the store.
	require.NoError(t, s.SaveAll(ctx))
	assert.Len(t, s.Orders.Snapshot(), 2)
	assert.Empty(t, s.Held())

	orders, err = saved.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestSaveAll_ChangeLiftsHold(t *testing.T) {
	ctx := t.Context()
	storage, saved := seededStorage(t, 100)

	s := appstate.Load(ctx, snapshot.NewBlobRepository(storage), appstate.Options{Location: time.UTC}, discardLogger())
	_, err := s.Orders.Upsert(ctx, newOrder(t, "C", order.Pending))
	require.NoError(t, err)
	assert.Empty(t, s.Held())

	require.NoError(t, s.SaveAll(ctx))

	orders, err := saved.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "C", orders[0].ID())
}

func TestReload_KeepsChangesMadeMeanwhile(t *testing.T) {
	ctx := t.Context()
	storage, _ := seededStorage(t, 1)

	s := appstate.Load(ctx, snapshot.NewBlobRepository(storage), appstate.Options{Location: time.UTC}, discardLogger())
	revision := s.Orders.Revision()
	_, err := s.Orders.Upsert(ctx, newOrder(t, "C", order.Pending))
	require.NoError(t, err)

	assert.False(t, s.Orders.Restore(ctx, nil, revision))
	require.NoError(t, s.Reload(ctx))
	require.Len(t, s.Orders.Snapshot(), 1)
	assert.Equal(t, "C", s.Orders.Snapshot()[0].ID())
}
