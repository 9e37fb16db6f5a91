package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type listing struct {
	IDs []uint `json:"ids"`
}

func exerciseCatalog(t *testing.T, c Catalog) {
	ctx := context.Background()

	var got listing
	assert.False(t, c.Get(ctx, "products", &got))

	require.NoError(t, c.Set(ctx, "products", listing{IDs: []uint{1, 2}}))
	require.True(t, c.Get(ctx, "products", &got))
	assert.Equal(t, []uint{1, 2}, got.IDs)

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, c.Get(ctx, "products", &listing{}))
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exerciseCatalog(t, m)
	assert.Zero(t, m.Len())
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var n Noop
	require.NoError(t, n.Set(ctx, "k", 1))
	assert.False(t, n.Get(ctx, "k", new(int)))
	assert.NoError(t, n.Invalidate(ctx))
}

func TestRedisCatalog(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisCatalog(client, time.Minute, zap.NewNop())
	c.prefix = "storefront:test:" + t.Name() + ":"
	exerciseCatalog(t, c)
}
