package ranking

import (
	"sort"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/utils"
)

// WithDistance - запись каталога и её расстояние от точки отсчёта
type WithDistance struct {
	POI        *domain.PointOfInterest
	DistanceKm float64
}

// Nearby возвращает записи в радиусе maxDistanceKm от origin по возрастанию расстояния.
// Записи без координат исключаются; отрицательный радиус или неверная точка отсчёта - пустой результат.
func Nearby(items []*domain.PointOfInterest, origin domain.Point, maxDistanceKm float64) []WithDistance {
	out := make([]WithDistance, 0)
	if !utils.ValidateRadius(maxDistanceKm) || !utils.ValidateCoordinates(origin.Lat, origin.Lon) {
		return out
	}

	for _, item := range items {
		if item == nil || item.Location == nil {
			continue
		}
		loc := item.Location
		if !utils.ValidateCoordinates(loc.Lat, loc.Lon) {
			continue
		}

		d := utils.HaversineDistance(origin.Lat, origin.Lon, loc.Lat, loc.Lon)
		if d <= maxDistanceKm {
			out = append(out, WithDistance{POI: item, DistanceKm: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// ByDistance - Nearby без расстояний
func ByDistance(items []*domain.PointOfInterest, origin domain.Point, maxDistanceKm float64) []*domain.PointOfInterest {
	nearby := Nearby(items, origin, maxDistanceKm)
	out := make([]*domain.PointOfInterest, len(nearby))
	for i, n := range nearby {
		out[i] = n.POI
	}
	return out
}
