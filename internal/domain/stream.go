package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRatingSubmitted = "stream:poi:rating"
)

// RatingSubmittedEvent - оценка туриста, ожидающая применения к агрегату
type RatingSubmittedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	POIID       string    `json:"poi_id"`
	UserID      string    `json:"user_id"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
