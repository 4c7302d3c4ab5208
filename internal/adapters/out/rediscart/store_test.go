package rediscart_test

import (
	"context"
	"testing"
	"time"

	"msosihub/internal/adapters/out/rediscart"
	"msosihub/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msosihub/internal/core/domain/model/cart"
)

func newStore(t *testing.T, ttl time.Duration) (*rediscart.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return rediscart.NewStore(client, ttl), mr
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestStore_GetMissingCart_ReturnsEmpty(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	customerID := kernel.NewUUID()

	c, err := store.Get(context.Background(), customerID)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.CustomerID().IsEqual(customerID))
}

func TestStore_SaveAndGet_RoundTrip(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx := context.Background()

	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	restaurantID := kernel.NewUUID()
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Wali Maharage", money(t, 8000), 2))
	require.NoError(t, c.Add(kernel.NewUUID(), restaurantID, "Pilau", money(t, 9000), 1))

	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Get(ctx, c.CustomerID())
	require.NoError(t, err)
	require.Len(t, loaded.Lines(), 2)
	assert.Equal(t, int64(25000), loaded.Subtotal().Amount())
	assert.True(t, loaded.RestaurantID().IsEqual(restaurantID))
	assert.Equal(t, "Wali Maharage", loaded.Lines()[0].Title)
}

func TestStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	ctx := context.Background()

	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, c.Add(kernel.NewUUID(), kernel.NewUUID(), "Pilau", money(t, 9000), 1))
	require.NoError(t, store.Save(ctx, c))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Save(ctx, c))
	mr.FastForward(45 * time.Minute)

	// 75 minutes after the first save the cart is still there
	loaded, err := store.Get(ctx, c.CustomerID())
	require.NoError(t, err)
	assert.False(t, loaded.IsEmpty())
}

func TestStore_ExpiredCart_ReadsAsEmpty(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	ctx := context.Background()

	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, c.Add(kernel.NewUUID(), kernel.NewUUID(), "Pilau", money(t, 9000), 1))
	require.NoError(t, store.Save(ctx, c))

	mr.FastForward(2 * time.Minute)

	loaded, err := store.Get(ctx, c.CustomerID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestStore_Clear(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx := context.Background()

	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, c.Add(kernel.NewUUID(), kernel.NewUUID(), "Pilau", money(t, 9000), 1))
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Clear(ctx, c.CustomerID()))

	loaded, err := store.Get(ctx, c.CustomerID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
