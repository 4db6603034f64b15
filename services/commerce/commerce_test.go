package commerce

import (
	"context"
	"testing"
	"time"

	"mahatta/services/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisCartAccumulatesQuantities(t *testing.T) {
	mr, client := newRedis(t)
	cart := NewRedisCart(client, time.Hour, zap.NewNop())
	ctx := context.Background()
	cat := catalog.Default()

	second, err := cat.ByID("2")
	require.NoError(t, err)
	first, err := cat.ByID("1")
	require.NoError(t, err)

	require.NoError(t, cart.AddToCart(ctx, "ann", second))
	require.NoError(t, cart.AddToCart(ctx, "ann", first))
	require.NoError(t, cart.AddToCart(ctx, "ann", second))

	lines, err := cart.Items(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].Wallpaper)
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, second, lines[1].Wallpaper)
	assert.Equal(t, int64(2), lines[1].Quantity)

	assert.Equal(t, time.Hour, mr.TTL("cart:ann"))
	assert.Equal(t, time.Hour, mr.TTL("cart:ann:items"))

	empty, err := cart.Items(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRedisCartReportsStoreFailure(t *testing.T) {
	mr, client := newRedis(t)
	cart := NewRedisCart(client, 0, zap.NewNop())
	mr.Close()

	w, _ := catalog.Default().ByID("3")
	assert.Error(t, cart.AddToCart(context.Background(), "ann", w))
}

func TestRedisWishlistToggle(t *testing.T) {
	mr, client := newRedis(t)
	wl := NewRedisWishlist(client, time.Hour)
	ctx := context.Background()

	on, err := wl.Toggle(ctx, "ann", "5")
	require.NoError(t, err)
	assert.True(t, on)
	on, err = wl.Toggle(ctx, "ann", "2")
	require.NoError(t, err)
	assert.True(t, on)

	ids, err := wl.IDs(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, ids)
	assert.Equal(t, time.Hour, mr.TTL("wishlist:ann"))

	on, err = wl.Toggle(ctx, "ann", "5")
	require.NoError(t, err)
	assert.False(t, on)

	ids, err = wl.IDs(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)

	ids, err = wl.IDs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
