package commerce

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisWishlist stores each shopper's wishlist as a set of wallpaper ids.
type RedisWishlist struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWishlist(client *redis.Client, ttl time.Duration) *RedisWishlist {
	return &RedisWishlist{client: client, ttl: ttl}
}

func wishlistKey(shopperID string) string { return "wishlist:" + shopperID }

// Toggle removes id when present and adds it otherwise. It reports whether id is now wishlisted.
func (w *RedisWishlist) Toggle(ctx context.Context, shopperID, id string) (bool, error) {
	key := wishlistKey(shopperID)
	removed, err := w.client.SRem(ctx, key, id).Result()
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	if removed > 0 {
		return false, nil
	}

	_, err = w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, id)
		if w.ttl > 0 {
			pipe.Expire(ctx, key, w.ttl)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	return true, nil
}

// IDs returns the wishlisted ids in lexical order.
func (w *RedisWishlist) IDs(ctx context.Context, shopperID string) ([]string, error) {
	ids, err := w.client.SMembers(ctx, wishlistKey(shopperID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read wishlist: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
