package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	apperrors "github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/ranking"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

var testDirectoryOptions = usecase.DirectoryOptions{
	DefaultLimit:    20,
	MaxLimit:        50,
	DefaultRadiusKm: 5,
	Weights:         ranking.DefaultTrendingWeights(),
	ListTTL:         5 * time.Minute,
	StatsTTL:        10 * time.Minute,
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func shops() []*domain.PointOfInterest {
	updated := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return []*domain.PointOfInterest{
		{ID: "s1", Kind: domain.POIKindShop, Name: "Silk House", Category: "textiles", Rating: 4.2, RatingCount: 10,
			Location: &domain.Point{Lat: 10.7769, Lon: 106.7009}, UpdatedAt: updated},
		{ID: "s2", Kind: domain.POIKindShop, Name: "Coffee Roasters", Category: "food", Rating: 4.8, RatingCount: 25,
			Location: &domain.Point{Lat: 10.7800, Lon: 106.7050}, UpdatedAt: updated},
		{ID: "s3", Kind: domain.POIKindShop, Name: "Pho Corner", Category: "food", UpdatedAt: updated},
		{ID: "s4", Kind: domain.POIKindShop, Name: "Lacquer Gallery", Category: "crafts", Rating: 3.9, RatingCount: 4,
			Location: &domain.Point{Lat: 11.5, Lon: 107.5}, UpdatedAt: updated},
	}
}

func itemIDs(items []dto.POIItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestDirectoryUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(shops(), nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{Kind: "shops", Mode: "rating"})
		require.NoError(t, err)

		assert.True(t, resp.Cached)
		assert.Equal(t, "rating", resp.Mode)
		assert.Equal(t, 20, resp.Limit)
		if diff := cmp.Diff([]string{"s2", "s1", "s4", "s3"}, itemIDs(resp.Items)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, resp.Items[3].Rating, "unrated item has no rating")
		poiRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and stores collection", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		data := shops()
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(nil, nil)
		poiRepo.On("List", ctx, domain.POIFilter{Kind: domain.POIKindShop}).Return(data, nil)
		cacheRepo.On("SetPOIList", ctx, domain.POIKindShop, data, 5*time.Minute).Return(nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{Kind: "shop", Mode: "category", Category: "food"})
		require.NoError(t, err)

		assert.False(t, resp.Cached)
		assert.Equal(t, []string{"s2", "s3"}, itemIDs(resp.Items))
		poiRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(nil, assert.AnError)
		poiRepo.On("List", ctx, domain.POIFilter{Kind: domain.POIKindShop}).Return(shops(), nil)
		cacheRepo.On("SetPOIList", ctx, domain.POIKindShop, mock.Anything, mock.Anything).Return(assert.AnError)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{Kind: "shops", Mode: "search", Query: "CORNER"})
		require.NoError(t, err)
		assert.Equal(t, []string{"s3"}, itemIDs(resp.Items))
	})

	t.Run("database failure is returned", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindTouristSpot).Return(nil, nil)
		poiRepo.On("List", ctx, domain.POIFilter{Kind: domain.POIKindTouristSpot}).Return(nil, apperrors.ErrDatabaseError)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		_, err := uc.List(ctx, dto.DirectoryRequest{Kind: "spots"})
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})

	t.Run("distance mode annotates and filters", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(shops(), nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{
			Kind: "shops",
			Mode: "distance",
			Lat:  ptrFloat64(10.7769),
			Lon:  ptrFloat64(106.7009),
		})
		require.NoError(t, err)

		require.Equal(t, []string{"s1", "s2"}, itemIDs(resp.Items))
		require.NotNil(t, resp.Items[0].DistanceKm)
		assert.InDelta(t, 0, *resp.Items[0].DistanceKm, 1e-9)
		assert.Greater(t, *resp.Items[1].DistanceKm, 0.5)
	})

	t.Run("category narrows other modes and limit is clamped", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(shops(), nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{Kind: "shops", Mode: "rating", Category: "food", Limit: 1000})
		require.NoError(t, err)

		assert.Equal(t, 50, resp.Limit)
		assert.Equal(t, []string{"s2", "s3"}, itemIDs(resp.Items))
	})

	t.Run("trending is the default mode", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetPOIList", ctx, domain.POIKindShop).Return(shops(), nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.List(ctx, dto.DirectoryRequest{Kind: "shops", Limit: 2})
		require.NoError(t, err)

		assert.Equal(t, "trending", resp.Mode)
		assert.Len(t, resp.Items, 2)
	})
}

func TestDirectoryUseCase_List_InvalidRequests(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.DirectoryRequest
		wantErr error
	}{
		{"unknown kind", dto.DirectoryRequest{Kind: "restaurants"}, apperrors.ErrInvalidRequest},
		{"unknown mode", dto.DirectoryRequest{Kind: "shops", Mode: "random"}, apperrors.ErrInvalidRankingMode},
		{"latitude out of range", dto.DirectoryRequest{Kind: "shops", Lat: ptrFloat64(95), Lon: ptrFloat64(0)}, apperrors.ErrInvalidRequest},
		{"lat without lon", dto.DirectoryRequest{Kind: "shops", Lat: ptrFloat64(10)}, apperrors.ErrInvalidCoordinates},
		{"distance without origin", dto.DirectoryRequest{Kind: "shops", Mode: "distance"}, apperrors.ErrInvalidCoordinates},
		{"category mode without category", dto.DirectoryRequest{Kind: "shops", Mode: "category"}, apperrors.ErrInvalidRequest},
		{"negative radius", dto.DirectoryRequest{Kind: "shops", RadiusKm: ptrFloat64(-1)}, apperrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poiRepo := &MockPOIRepository{}
			cacheRepo := &MockCacheRepository{}
			uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)

			_, err := uc.List(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			cacheRepo.AssertNotCalled(t, "GetPOIList", mock.Anything, mock.Anything)
		})
	}
}

func TestDirectoryUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	stats := &domain.DirectoryStats{
		Total:  4,
		ByKind: map[domain.POIKind]int{domain.POIKindShop: 4},
		Rated:  3,
	}

	t.Run("stats from cache with top rated per kind", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", mock.Anything).Return(stats, nil)
		cacheRepo.On("GetPOIList", mock.Anything, domain.POIKindShop).Return(shops(), nil)
		cacheRepo.On("GetPOIList", mock.Anything, domain.POIKindTouristSpot).Return([]*domain.PointOfInterest{}, nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 4, resp.Stats.Total)
		assert.Equal(t, []string{"s2", "s1", "s4"}, itemIDs(resp.TopRated["shop"]))
		assert.Empty(t, resp.TopRated["tourist_spot"])
		poiRepo.AssertNotCalled(t, "Stats", mock.Anything)
	})

	t.Run("stats miss hits database and caches", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", mock.Anything).Return(nil, nil)
		poiRepo.On("Stats", mock.Anything).Return(stats, nil)
		cacheRepo.On("SetStats", mock.Anything, stats, 10*time.Minute).Return(nil)
		cacheRepo.On("GetPOIList", mock.Anything, mock.Anything).Return([]*domain.PointOfInterest{}, nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		resp, err := uc.Stats(ctx)
		require.NoError(t, err)
		assert.Same(t, stats, resp.Stats)
		poiRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("database failure is returned", func(t *testing.T) {
		poiRepo := &MockPOIRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", mock.Anything).Return(nil, nil)
		poiRepo.On("Stats", mock.Anything).Return(nil, apperrors.ErrDatabaseError)
		cacheRepo.On("GetPOIList", mock.Anything, mock.Anything).Return([]*domain.PointOfInterest{}, nil)

		uc := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, zap.NewNop(), testDirectoryOptions)
		_, err := uc.Stats(ctx)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}
