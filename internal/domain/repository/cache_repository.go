package repository

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах кеша - (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// GetPOIList получает коллекцию POI данного типа
	GetPOIList(ctx context.Context, kind domain.POIKind) ([]*domain.PointOfInterest, error)

	// SetPOIList сохраняет коллекцию POI данного типа
	SetPOIList(ctx context.Context, kind domain.POIKind, pois []*domain.PointOfInterest, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.DirectoryStats, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.DirectoryStats, ttl time.Duration) error

	// InvalidateDirectory сбрасывает коллекцию POI данного типа и статистику
	InvalidateDirectory(ctx context.Context, kind domain.POIKind) error
}
