package repository

import (
	"context"

	"github.com/tourism-directory/internal/domain"
)

// POIRepository определяет методы для работы с каталогом точек интереса
type POIRepository interface {
	// GetByID возвращает POI по ID
	GetByID(ctx context.Context, id string) (*domain.PointOfInterest, error)

	// List возвращает все POI, подходящие под фильтр, в порядке хранения
	List(ctx context.Context, filter domain.POIFilter) ([]*domain.PointOfInterest, error)

	// ApplyRating добавляет оценку к агрегату рейтинга
	ApplyRating(ctx context.Context, id string, score int) (*domain.PointOfInterest, error)

	// Stats возвращает сводку по каталогу
	Stats(ctx context.Context) (*domain.DirectoryStats, error)
}
