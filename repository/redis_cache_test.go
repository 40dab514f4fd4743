package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_SetGetWithTTL(t *testing.T) {
	server := miniredis.RunT(t)
	cache := NewRedisCache(server.Addr(), "", 0, time.Hour)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Ping(ctx))

	_, ok := cache.Get(ctx, "sci:projection:v1:missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "sci:projection:v1:abc", `{"summary":{}}`))
	val, ok := cache.Get(ctx, "sci:projection:v1:abc")
	assert.True(t, ok)
	assert.Equal(t, `{"summary":{}}`, val)
	assert.Equal(t, time.Hour, server.TTL("sci:projection:v1:abc"))

	server.FastForward(2 * time.Hour)
	_, ok = cache.Get(ctx, "sci:projection:v1:abc")
	assert.False(t, ok)
}

func TestRedisCache_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	cache := NewRedisCache(addr, "", 0, 0)
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, cache.Ping(ctx))
	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}
