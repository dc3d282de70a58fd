package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underwaterhousings/catalog_api/internal/config"
)

type listing struct {
	Model string   `json:"model"`
	Price *float64 `json:"price"`
}

func newTestRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(&config.RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewRedisClientUnreachable(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{Host: "127.0.0.1", Port: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")
}

func TestCatalogCacheRoundTrip(t *testing.T) {
	client, mr := newTestRedis(t)
	c := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	var got []listing
	hit, err := c.Get(ctx, "housings:::false:", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	price := 5500.0
	want := []listing{{Model: "NA-Z8", Price: &price}, {Model: "SF-A7IV"}}
	require.NoError(t, c.Set(ctx, "housings:::false:", want))
	assert.True(t, mr.Exists("catalog:housings:::false:"))
	assert.Equal(t, time.Minute, mr.TTL("catalog:housings:::false:"))

	hit, err = c.Get(ctx, "housings:::false:", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, "housings:::false:", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCatalogCacheInvalidateKeepsOtherKeys(t *testing.T) {
	client, mr := newTestRedis(t)
	c := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, c.Set(ctx, "housings:"+strconv.Itoa(i), []listing{}))
	}
	require.NoError(t, mr.Set("session:abc", "keep"))

	require.NoError(t, c.Invalidate(ctx))
	assert.Equal(t, []string{"session:abc"}, mr.Keys())
}

func TestDeleteByPrefixCountsEveryKey(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		require.NoError(t, mr.Set("catalog:k"+strconv.Itoa(i), "v"))
	}
	require.NoError(t, mr.Set("catalogue", "keep"))

	n, err := client.DeleteByPrefix(ctx, "catalog:")
	require.NoError(t, err)
	assert.Equal(t, 150, n)
	assert.Equal(t, []string{"catalogue"}, mr.Keys())

	n, err = client.DeleteByPrefix(ctx, "catalog:")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCatalogCacheGetRejectsCorruptEntry(t *testing.T) {
	client, mr := newTestRedis(t)
	c := NewCatalogCache(client, time.Minute)
	require.NoError(t, mr.Set("catalog:bad", "{not json"))

	var got []listing
	hit, err := c.Get(context.Background(), "bad", &got)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestNilCatalogCacheIsDisabled(t *testing.T) {
	var c *CatalogCache
	ctx := context.Background()

	var got []listing
	hit, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Set(ctx, "k", got))
	assert.NoError(t, c.Invalidate(ctx))
}
