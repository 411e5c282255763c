// Package ranking строит упорядоченные выборки точек интереса для списков каталога.
//
// Все функции чистые: не изменяют входной срез, не возвращают ошибок и
// на пустой вход или неверные числовые параметры отвечают пустым результатом.
// Сортировки стабильные, при равенстве сохраняется входной порядок.
package ranking

import (
	"sort"

	"github.com/tourism-directory/internal/domain"
)

// clone копирует срез без nil-элементов
func clone(items []*domain.PointOfInterest) []*domain.PointOfInterest {
	out := make([]*domain.PointOfInterest, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

// ByRating сортирует по убыванию рейтинга; записи без оценок идут в конце во входном порядке
func ByRating(items []*domain.PointOfInterest) []*domain.PointOfInterest {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return ratedBefore(out[i], out[j])
	})
	return out
}

func ratedBefore(a, b *domain.PointOfInterest) bool {
	if a.Rated() != b.Rated() {
		return a.Rated()
	}
	if !a.Rated() {
		return false
	}
	return a.Rating > b.Rating
}

// ByCategory оставляет записи с точным совпадением категории во входном порядке
func ByCategory(items []*domain.PointOfInterest, category string) []*domain.PointOfInterest {
	out := make([]*domain.PointOfInterest, 0)
	for _, item := range items {
		if item != nil && item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func limitTo(items []*domain.PointOfInterest, limit int) []*domain.PointOfInterest {
	if limit <= 0 {
		return []*domain.PointOfInterest{}
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
