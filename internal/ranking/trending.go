package ranking

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tourism-directory/internal/domain"
)

// TrendingWeights - параметры составного скоринга "в тренде".
// Веса - продуктовое решение, значения по умолчанию см. DefaultTrendingWeights.
type TrendingWeights struct {
	// Rating - вес байесовского рейтинга, нормированного к [0, 1]
	Rating float64
	// Recency - вес свежести записи
	Recency float64
	// HalfLife - за это время вклад свежести падает вдвое
	HalfLife time.Duration
	// PriorVotes и PriorMean сглаживают рейтинг записей с малым числом оценок
	PriorVotes float64
	PriorMean  float64
}

func DefaultTrendingWeights() TrendingWeights {
	return TrendingWeights{
		Rating:     0.7,
		Recency:    0.3,
		HalfLife:   30 * 24 * time.Hour,
		PriorVotes: 5,
		PriorMean:  3.0,
	}
}

// Validate - веса конечные и неотрицательные, хотя бы один из Rating/Recency больше нуля.
// С невалидными весами TrendingWith возвращает пустой результат.
func (w TrendingWeights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"rating", w.Rating},
		{"recency", w.Recency},
		{"prior votes", w.PriorVotes},
		{"prior mean", w.PriorMean},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("trending %s weight must be a non-negative number, got %v", f.name, f.value)
		}
	}
	if w.Rating == 0 && w.Recency == 0 {
		return fmt.Errorf("trending rating and recency weights are both zero")
	}
	if w.HalfLife < 0 {
		return fmt.Errorf("trending half-life must not be negative, got %s", w.HalfLife)
	}
	return nil
}

// Trending - топ limit записей по DefaultTrendingWeights
func Trending(items []*domain.PointOfInterest, limit int) []*domain.PointOfInterest {
	return TrendingWith(items, limit, DefaultTrendingWeights())
}

// TrendingWith упорядочивает по составному скору рейтинга и свежести.
// Свежесть считается от самой новой записи во входе, а не от текущего времени,
// поэтому результат детерминирован для одинакового входа.
func TrendingWith(items []*domain.PointOfInterest, limit int, w TrendingWeights) []*domain.PointOfInterest {
	if limit <= 0 || w.Validate() != nil {
		return []*domain.PointOfInterest{}
	}

	out := clone(items)
	ref := newest(out)

	scores := make(map[*domain.PointOfInterest]float64, len(out))
	for _, item := range out {
		scores[item] = trendingScore(item, ref, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})

	return limitTo(out, limit)
}

func newest(items []*domain.PointOfInterest) time.Time {
	var ref time.Time
	for _, item := range items {
		if item.UpdatedAt.After(ref) {
			ref = item.UpdatedAt
		}
	}
	return ref
}

func trendingScore(item *domain.PointOfInterest, ref time.Time, w TrendingWeights) float64 {
	var rating float64
	if item.Rated() {
		n := float64(item.RatingCount)
		rating = (n*item.Rating + w.PriorVotes*w.PriorMean) / (n + w.PriorVotes) / 5.0
	}

	var recency float64
	if !item.UpdatedAt.IsZero() && w.HalfLife > 0 {
		age := ref.Sub(item.UpdatedAt)
		recency = math.Exp2(-float64(age) / float64(w.HalfLife))
	}

	return w.Rating*rating + w.Recency*recency
}
