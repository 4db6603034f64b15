package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"mahatta/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCart keeps one hash of quantities per shopper plus a hash of line snapshots, so the
// cart page can render without going back to the catalog.
type RedisCart struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCart(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCart {
	return &RedisCart{client: client, ttl: ttl, logger: logger.With(zap.String("component", "cart"))}
}

func cartKey(shopperID string) string      { return "cart:" + shopperID }
func cartItemsKey(shopperID string) string { return "cart:" + shopperID + ":items" }

// AddToCart adds one unit of w to the shopper's cart.
func (c *RedisCart) AddToCart(ctx context.Context, shopperID string, w models.Wallpaper) error {
	snapshot, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode cart line: %w", err)
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, cartKey(shopperID), w.ID, 1)
		pipe.HSet(ctx, cartItemsKey(shopperID), w.ID, snapshot)
		if c.ttl > 0 {
			pipe.Expire(ctx, cartKey(shopperID), c.ttl)
			pipe.Expire(ctx, cartItemsKey(shopperID), c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add %s to cart: %w", w.ID, err)
	}
	c.logger.Debug("Added to cart", zap.String("shopper", shopperID), zap.String("wallpaperId", w.ID))
	return nil
}

// Items lists the shopper's cart lines ordered by wallpaper id.
func (c *RedisCart) Items(ctx context.Context, shopperID string) ([]models.CartLine, error) {
	quantities, err := c.client.HGetAll(ctx, cartKey(shopperID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(quantities) == 0 {
		return []models.CartLine{}, nil
	}
	snapshots, err := c.client.HGetAll(ctx, cartItemsKey(shopperID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart items: %w", err)
	}

	lines := make([]models.CartLine, 0, len(quantities))
	for id, q := range quantities {
		raw, ok := snapshots[id]
		if !ok {
			c.logger.Warn("Cart line without snapshot", zap.String("shopper", shopperID), zap.String("wallpaperId", id))
			continue
		}
		var line models.CartLine
		if err := json.Unmarshal([]byte(raw), &line.Wallpaper); err != nil {
			return nil, fmt.Errorf("decode cart line %s: %w", id, err)
		}
		if line.Quantity, err = strconv.ParseInt(q, 10, 64); err != nil {
			return nil, fmt.Errorf("decode quantity of %s: %w", id, err)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Wallpaper.ID < lines[j].Wallpaper.ID })
	return lines, nil
}
