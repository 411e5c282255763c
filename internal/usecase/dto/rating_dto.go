package dto

import "github.com/google/uuid"

// RatingRequest - оценка туриста
type RatingRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// RatingAcceptedResponse - оценка принята в очередь
type RatingAcceptedResponse struct {
	EventID uuid.UUID `json:"event_id"`
	POIID   string    `json:"poi_id"`
	Status  string    `json:"status"`
}
