package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable returns a client pointed at a port nothing listens on.
func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewMeritCache_DefaultTTL(t *testing.T) {
	c := NewMeritCache(unreachable(t), 0)
	assert.Equal(t, defaultMeritTTL, c.ttl)

	c = NewMeritCache(unreachable(t), time.Minute)
	assert.Equal(t, time.Minute, c.ttl)
}

func TestMeritCache_ServerDownIsAnErrorNotAMiss(t *testing.T) {
	c := NewMeritCache(unreachable(t), time.Minute)
	ctx := context.Background()

	merits, ok, err := c.Get(ctx)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, merits)

	assert.Error(t, c.Set(ctx, nil))
	assert.Error(t, c.Invalidate(ctx))
}

func TestConnect_FailsWithoutServer(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Addr: "localhost:6379"}.Enabled())
	assert.Equal(t, 5*time.Second, Config{}.timeout())
}
