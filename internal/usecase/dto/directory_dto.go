package dto

import (
	"time"

	"github.com/tourism-directory/internal/domain"
)

// DirectoryRequest - параметры выдачи каталога (query string)
type DirectoryRequest struct {
	Kind     string   `json:"kind" validate:"required,poi_kind"`
	Mode     string   `json:"mode" validate:"omitempty,max=32"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusKm *float64 `json:"radius_km,omitempty" validate:"omitempty,min=0,max=500"`
	Category string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Query    string   `json:"q,omitempty" validate:"omitempty,max=200"`
	Limit    int      `json:"limit,omitempty" validate:"omitempty,min=1"`
}

// DirectoryResponse - ранжированная выдача каталога
type DirectoryResponse struct {
	Items  []POIItem `json:"items"`
	Total  int       `json:"total"`
	Mode   string    `json:"mode"`
	Limit  int       `json:"limit"`
	Cached bool      `json:"cached"`
}

// POIItem - запись каталога в ответе API
type POIItem struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description *string       `json:"description,omitempty"`
	Address     *string       `json:"address,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
	RatingCount int           `json:"rating_count"`
	Location    *domain.Point `json:"location,omitempty"`
	DistanceKm  *float64      `json:"distance_km,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// DirectoryStatsResponse - сводка каталога для админ-панели
type DirectoryStatsResponse struct {
	Stats    *domain.DirectoryStats `json:"stats"`
	TopRated map[string][]POIItem   `json:"top_rated"`
}
