package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/repository/cache"
	"go.uber.org/zap"
)

func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, cache.POIListKey(domain.POIKindShop), cache.StatsKey(), "test:cache:raw")
	t.Cleanup(func() {
		client.Del(context.Background(), cache.POIListKey(domain.POIKindShop), cache.StatsKey(), "test:cache:raw")
		client.Close()
	})

	return cache.NewRedisForTest(client, zap.NewNop())
}

func TestPOIListKey(t *testing.T) {
	assert.Equal(t, "poi:list:shop", cache.POIListKey(domain.POIKindShop))
	assert.Equal(t, "poi:list:tourist_spot", cache.POIListKey(domain.POIKindTouristSpot))
	assert.Equal(t, "stats:directory", cache.StatsKey())
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	val, err := repo.Get(ctx, "test:cache:raw")
	require.NoError(t, err)
	assert.Nil(t, val, "miss should be nil without error")

	require.NoError(t, repo.Set(ctx, "test:cache:raw", []byte("hello"), time.Minute))

	val, err = repo.Get(ctx, "test:cache:raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), val)

	require.NoError(t, repo.Delete(ctx, "test:cache:raw"))
	val, err = repo.Get(ctx, "test:cache:raw")
	require.NoError(t, err)
	assert.Nil(t, val)

	assert.NoError(t, repo.Delete(ctx))
}

func TestCacheRepository_POIList(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	pois, err := repo.GetPOIList(ctx, domain.POIKindShop)
	require.NoError(t, err)
	assert.Nil(t, pois)

	in := []*domain.PointOfInterest{
		{ID: "shop-1", Kind: domain.POIKindShop, Name: "Ceramics", Rating: 4.5, RatingCount: 2,
			Location: &domain.Point{Lat: 10.7, Lon: 106.7}},
		{ID: "shop-2", Kind: domain.POIKindShop, Name: "Stall"},
	}
	require.NoError(t, repo.SetPOIList(ctx, domain.POIKindShop, in, time.Minute))

	pois, err = repo.GetPOIList(ctx, domain.POIKindShop)
	require.NoError(t, err)
	require.Len(t, pois, 2)
	assert.Equal(t, "shop-1", pois[0].ID)
	require.NotNil(t, pois[0].Location)
	assert.Equal(t, 106.7, pois[0].Location.Lon)
	assert.Nil(t, pois[1].Location)

	require.NoError(t, repo.SetPOIList(ctx, domain.POIKindShop, nil, time.Minute))
	pois, err = repo.GetPOIList(ctx, domain.POIKindShop)
	require.NoError(t, err)
	assert.NotNil(t, pois, "cached empty list is a hit")
	assert.Empty(t, pois)
}

func TestCacheRepository_Stats(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)

	in := &domain.DirectoryStats{
		Total:         3,
		ByKind:        map[domain.POIKind]int{domain.POIKindShop: 2, domain.POIKindTouristSpot: 1},
		ByCategory:    map[string]int{"food": 3},
		Rated:         2,
		AverageRating: 3.75,
	}
	require.NoError(t, repo.SetStats(ctx, in, time.Minute))

	stats, err = repo.GetStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByKind[domain.POIKindShop])
	assert.InDelta(t, 3.75, stats.AverageRating, 1e-9)
}

func TestCacheRepository_InvalidateDirectory(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	require.NoError(t, repo.SetPOIList(ctx, domain.POIKindShop, []*domain.PointOfInterest{{ID: "shop-1"}}, time.Minute))
	require.NoError(t, repo.SetStats(ctx, &domain.DirectoryStats{Total: 1}, time.Minute))

	require.NoError(t, repo.InvalidateDirectory(ctx, domain.POIKindShop))

	pois, err := repo.GetPOIList(ctx, domain.POIKindShop)
	require.NoError(t, err)
	assert.Nil(t, pois)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}
