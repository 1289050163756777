package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/bacharbh/shopeasy/internal/cart/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestLoad_MissingKey_ReturnsEmptyCart(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	cart, err := store.Load(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.SessionID)
	assert.True(t, cart.IsEmpty())
}

func TestLoad_CorruptPayload_ReturnsEmptyCart(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cartKey("s1"), "{not json at all")

	cart, err := store.Load(context.Background(), "s1")

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	cart := domain.New("s1")
	cart.Add(domain.LineItem{ProductID: "p1", Name: "Headphones", Price: 129.99, Image: "img"}, 2)
	cart.Add(domain.LineItem{ProductID: "p2", Name: "Mouse", Price: 49.99, Image: "img2"}, 1)

	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "p1", loaded.Items[0].ProductID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.Equal(t, 129.99, loaded.Items[0].Price)
	assert.Equal(t, "Mouse", loaded.Items[1].Name)
}

func TestSave_WireLayout(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	cart := domain.New("s1")
	cart.Add(domain.LineItem{ProductID: "p1", Name: "Headphones", Price: 129.99, Image: "img"}, 2)
	require.NoError(t, store.Save(context.Background(), cart))

	raw, err := mr.Get(cartKey("s1"))
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0]["id"])
	assert.Equal(t, "Headphones", records[0]["name"])
	assert.Equal(t, 129.99, records[0]["price"])
	assert.Equal(t, "img", records[0]["image"])
	assert.Equal(t, float64(2), records[0]["quantity"])
}

func TestSave_EmptyCart_PersistsEmptySequence(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, store.Save(context.Background(), domain.New("s1")))

	raw, err := mr.Get(cartKey("s1"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", raw)
}

func TestClear_RemovesKey(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	cart := domain.New("s1")
	cart.Add(domain.LineItem{ProductID: "p1"}, 1)
	require.NoError(t, store.Save(ctx, cart))

	require.NoError(t, store.Clear(ctx, "s1"))
	assert.False(t, mr.Exists(cartKey("s1")))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
