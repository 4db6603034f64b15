// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"mahatta/config"

	"github.com/go-redis/redis/v8"
)

// StoreClient backs the cart and wishlist collaborators.
var StoreClient *redis.Client

// InitStore connects the Redis store client using AppConfig and verifies it with a ping.
func InitStore() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to Redis (store) at %s: %w", config.AppConfig.RedisAddr, err)
	}
	StoreClient = client
	return nil
}

// GetStoreClient returns the Redis store client, connecting on first use.
func GetStoreClient() (*redis.Client, error) {
	if StoreClient == nil {
		if err := InitStore(); err != nil {
			return nil, err
		}
	}
	return StoreClient, nil
}
