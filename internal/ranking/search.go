package ranking

import (
	"strings"

	"github.com/tourism-directory/internal/domain"
)

// MatchText - поиск подстроки без учёта регистра по названию и категории.
// Пустой запрос ничего не отфильтровывает.
func MatchText(items []*domain.PointOfInterest, query string) []*domain.PointOfInterest {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clone(items)
	}

	out := make([]*domain.PointOfInterest, 0)
	for _, item := range items {
		if item == nil {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			out = append(out, item)
		}
	}
	return out
}
