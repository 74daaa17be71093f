package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarimvitrin.com/app/internal/modules/products"
	"tarimvitrin.com/app/internal/modules/storefront"
)

func sampleState() storefront.State {
	st := storefront.NewState()
	st.Products = []products.Product{{ID: "1", Name: "Gübre A", Category: "Katı Ürünler", Price: 150}}
	st.Loaded = true
	st.Query = "gübre"
	p := st.Products[0]
	st.Modal = storefront.Modal{Open: true, Product: &p}
	st.Draft = storefront.Draft{ID: "1", Name: "Gübre A", Price: "150", Category: "Katı Ürünler"}
	return st
}

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, time.Hour), mr
}

func TestRedis_SaveGet(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", sampleState()))
	assert.True(t, mr.Exists(stateKey("s1")))
	assert.Equal(t, time.Hour, mr.TTL(stateKey("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestRedis_MissAndDelete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "s1", sampleState()))
	require.NoError(t, store.Delete(ctx, "s1"))
	assert.False(t, mr.Exists(stateKey("s1")))
}

func TestRedis_Expiry(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", sampleState()))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_InvalidJSON(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(stateKey("s1"), "{not json"))

	_, err := store.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMemory_SaveGetIsolated(t *testing.T) {
	store := NewMemory(time.Hour)
	ctx := context.Background()

	st := sampleState()
	require.NoError(t, store.Save(ctx, "s1", st))
	st.Products[0].Name = "changed"

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Gübre A", got.Products[0].Name)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Expiry(t *testing.T) {
	store := NewMemory(time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), "s1", sampleState()))
	now = now.Add(2 * time.Minute)

	_, err := store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_Drivers(t *testing.T) {
	ctx := context.Background()

	res, err := New(ctx, Config{})
	require.NoError(t, err)
	assert.Equal(t, "memory", res.Driver)

	mr := miniredis.RunT(t)
	res, err = New(ctx, Config{Driver: "redis", RedisAddr: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, "redis", res.Driver)
	require.NoError(t, res.Close())

	_, err = New(ctx, Config{Driver: "redis"})
	assert.Error(t, err)

	_, err = New(ctx, Config{Driver: "s3"})
	assert.Error(t, err)
}
