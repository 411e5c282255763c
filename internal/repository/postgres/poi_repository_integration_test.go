package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/repository/postgres/testhelpers"
)

// TestPOIRepository_Integration - требует Postgres (TEST_DB_* переменные)
func TestPOIRepository_Integration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	const migrations = "../../../migrations"

	tdb := testhelpers.SetupTestDB(t)
	require.NoError(t, tdb.Migrate(migrations))
	t.Cleanup(func() { _ = tdb.Rollback(migrations) })
	require.NoError(t, tdb.Seed("testdata", "pois.sql"))

	repo := tdb.POIRepository()
	ctx := context.Background()

	t.Run("GetByID", func(t *testing.T) {
		poi, err := repo.GetByID(ctx, "shop-1")
		require.NoError(t, err)
		assert.Equal(t, "Ceramics Corner", poi.Name)
		require.NotNil(t, poi.Location)
		assert.InDelta(t, 10.7765, poi.Location.Lat, 1e-9)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrPOINotFound)
	})

	t.Run("List_ByKind", func(t *testing.T) {
		pois, err := repo.List(ctx, domain.POIFilter{Kind: domain.POIKindShop})
		require.NoError(t, err)
		require.Len(t, pois, 2)
		assert.Equal(t, "shop-1", pois[0].ID)
		assert.Nil(t, pois[1].Location)
	})

	t.Run("List_ByCategory", func(t *testing.T) {
		pois, err := repo.List(ctx, domain.POIFilter{Categories: []string{"landmark"}})
		require.NoError(t, err)
		require.Len(t, pois, 1)
		assert.Equal(t, "spot-1", pois[0].ID)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.Rated)
		assert.Equal(t, 2, stats.ByKind[domain.POIKindShop])
		assert.InDelta(t, 3.75, stats.AverageRating, 1e-9)
	})

	t.Run("ApplyRating", func(t *testing.T) {
		poi, err := repo.ApplyRating(ctx, "shop-2", 4)
		require.NoError(t, err)
		assert.Equal(t, 1, poi.RatingCount)
		assert.InDelta(t, 4.0, poi.Rating, 1e-9)

		poi, err = repo.ApplyRating(ctx, "shop-2", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, poi.RatingCount)
		assert.InDelta(t, 3.0, poi.Rating, 1e-9)
	})
}
