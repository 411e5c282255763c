package ranking

import (
	"fmt"

	"github.com/tourism-directory/internal/domain"
)

// Mode - способ ранжирования списка
type Mode string

const (
	ModeTrending Mode = "trending"
	ModeRating   Mode = "rating"
	ModeDistance Mode = "distance"
	ModeCategory Mode = "category"
	ModeSearch   Mode = "search"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeTrending, ModeRating, ModeDistance, ModeCategory, ModeSearch:
		return m, nil
	}
	return "", fmt.Errorf("unknown ranking mode %q", s)
}

// Request - параметры одного вызова Rank
type Request struct {
	Mode Mode
	// Origin и MaxDistanceKm используются режимом distance
	Origin        *domain.Point
	MaxDistanceKm float64
	// Category - для режима category
	Category string
	// Query - для режима search
	Query string
	// Weights переопределяет веса режима trending
	Weights *TrendingWeights
	Limit   int
}

// Rank выполняет запрос и обрезает результат до Limit.
// Неизвестный режим, Limit <= 0 или distance без точки отсчёта - пустой результат.
func Rank(items []*domain.PointOfInterest, req Request) []*domain.PointOfInterest {
	if req.Limit <= 0 {
		return []*domain.PointOfInterest{}
	}

	switch req.Mode {
	case ModeTrending:
		w := DefaultTrendingWeights()
		if req.Weights != nil {
			w = *req.Weights
		}
		return TrendingWith(items, req.Limit, w)
	case ModeRating:
		return limitTo(ByRating(items), req.Limit)
	case ModeDistance:
		if req.Origin == nil {
			return []*domain.PointOfInterest{}
		}
		return limitTo(ByDistance(items, *req.Origin, req.MaxDistanceKm), req.Limit)
	case ModeCategory:
		return limitTo(ByCategory(items, req.Category), req.Limit)
	case ModeSearch:
		return limitTo(ByRating(MatchText(items, req.Query)), req.Limit)
	}

	return []*domain.PointOfInterest{}
}
