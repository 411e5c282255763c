package repository

import (
	"context"

	"github.com/tourism-directory/internal/domain"
)

// SessionRepository - адаптер внешнего провайдера идентификации.
// Возвращает errors.ErrSessionNotFound / errors.ErrSessionExpired для отсутствующих сессий.
type SessionRepository interface {
	Resolve(ctx context.Context, token string) (*domain.SessionRecord, error)
}
