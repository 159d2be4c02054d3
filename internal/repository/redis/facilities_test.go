package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"church-office-go/internal/config"
	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/pkg/logger"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *FacilityCache) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewFacilityCache(client, logger.NewNop())
}

func TestFacilityCacheRoundTrip(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	_, ok := cache.GetFacilities(ctx)
	assert.False(t, ok)

	cache.SetFacilities(ctx, []reservationdomain.Facility{
		{ID: "f1", Name: "대예배실", Location: "본관 3층", Capacity: 500},
	}, time.Minute)

	items, ok := cache.GetFacilities(ctx)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "대예배실", items[0].Name)
	assert.Equal(t, 500, items[0].Capacity)

	mr.FastForward(2 * time.Minute)
	_, ok = cache.GetFacilities(ctx)
	assert.False(t, ok)
}

func TestFacilityCacheClear(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	cache.SetFacilities(ctx, []reservationdomain.Facility{{ID: "f1"}}, time.Minute)
	require.True(t, mr.Exists(facilitiesKey))

	cache.Clear(ctx)
	assert.False(t, mr.Exists(facilitiesKey))
}

func TestFacilityCacheIgnoresCorruptPayload(t *testing.T) {
	mr, cache := setupCache(t)
	require.NoError(t, mr.Set(facilitiesKey, "not-json"))

	_, ok := cache.GetFacilities(context.Background())
	assert.False(t, ok)
}

func TestNewClientPings(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	mr.Close()
	_, err = NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	assert.Error(t, err)
}
