package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"restaurant/internal/adapters/out/filestore"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage(t *testing.T) {
	ctx := t.Context()
	dir := filepath.Join(t.TempDir(), "data")
	s, err := filestore.NewBlobStorage(dir)
	require.NoError(t, err)

	_, found, err := s.Load(ctx, ports.OrdersKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, ports.OrdersKey, []byte(`[{"id":"A"}]`)))
	require.NoError(t, s.Save(ctx, ports.OrdersKey, []byte(`[]`)))

	blob, found, err := s.Load(ctx, ports.OrdersKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(blob))

	_, err = os.Stat(filepath.Join(dir, "orders.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
