package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthReportsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	status := CheckHealth(context.Background(), client, nil)
	assert.True(t, status.Redis)
	assert.Nil(t, status.Mongo)
	assert.Equal(t, status, GetHealthStatus())

	mr.Close()
	status = CheckHealth(context.Background(), client, nil)
	assert.False(t, status.Redis)
}

func TestCheckHealthWithoutRedis(t *testing.T) {
	status := CheckHealth(context.Background(), nil, nil)
	assert.False(t, status.Redis)
}
