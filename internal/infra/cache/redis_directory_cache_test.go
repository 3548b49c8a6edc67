package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
)

// newTestClient connects to REDIS_ADDR or skips the test.
func newTestClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { client.Close() })

	return client
}

func TestRedisDirectoryCache_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	c := NewRedisDirectoryCache(client, time.Minute)

	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.GetPublicCompanies(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	monday, err := entity.ParseSchedule(map[string]any{
		"monday": []any{map[string]any{"start": "09:00", "end": "18:00"}},
	})
	require.NoError(t, err)

	companies := []*entity.Company{{
		ID:       "c1",
		Name:     "Café Ñuñoa",
		Slug:     "cafe-nunoa",
		Schedule: monday,
		Location: &entity.GeoPoint{Lat: -33.4569, Lng: -70.5977},
	}}
	require.NoError(t, c.SetPublicCompanies(ctx, companies))

	cached, ok, err := c.GetPublicCompanies(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, companies[0].Location, cached[0].Location)
	assert.Equal(t, monday, cached[0].Schedule)

	ttl, err := client.TTL(ctx, publicCompaniesKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.GetPublicCompanies(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisDirectoryCache_DefaultTTL(t *testing.T) {
	c := NewRedisDirectoryCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0).(*redisDirectoryCache)
	assert.Equal(t, defaultDirectoryTTL, c.ttl)
}
