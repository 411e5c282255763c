package domain

import (
	"fmt"
	"time"
)

// POIKind - тип точки интереса в каталоге
type POIKind string

const (
	POIKindShop        POIKind = "shop"
	POIKindTouristSpot POIKind = "tourist_spot"
)

// AllPOIKinds - типы каталога в порядке отображения
func AllPOIKinds() []POIKind {
	return []POIKind{POIKindShop, POIKindTouristSpot}
}

// ParsePOIKind принимает как имена типов, так и сегменты URL ("shops", "spots")
func ParsePOIKind(s string) (POIKind, error) {
	switch s {
	case "shop", "shops":
		return POIKindShop, nil
	case "tourist_spot", "tourist_spots", "spot", "spots":
		return POIKindTouristSpot, nil
	}
	return "", fmt.Errorf("unknown poi kind %q", s)
}

// PointOfInterest - магазин, туристическое место или другая запись каталога
type PointOfInterest struct {
	ID          string    `json:"id" db:"id"`
	Kind        POIKind   `json:"kind" db:"kind"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	Address     *string   `json:"address,omitempty" db:"address"`
	OwnerID     *string   `json:"owner_id,omitempty" db:"owner_id"`
	Rating      float64   `json:"rating" db:"rating"`
	RatingCount int       `json:"rating_count" db:"rating_count"`
	Location    *Point    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Rated - рейтинг определён только при наличии оценок
func (p *PointOfInterest) Rated() bool {
	return p.RatingCount > 0
}

// POIFilter - фильтр выборки из хранилища
type POIFilter struct {
	Kind       POIKind
	Categories []string
}

// DirectoryStats - сводка по каталогу для админ-панели
type DirectoryStats struct {
	Total         int             `json:"total"`
	ByKind        map[POIKind]int `json:"by_kind"`
	ByCategory    map[string]int  `json:"by_category"`
	Rated         int             `json:"rated"`
	AverageRating float64         `json:"average_rating"`
	LastUpdated   time.Time       `json:"last_updated"`
}
