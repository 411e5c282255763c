package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/tourism-directory/internal/access"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

// AccessUseCase связывает провайдер сессий с гейтом доступа
type AccessUseCase struct {
	gate        *access.Gate
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewAccessUseCase создает новый экземпляр AccessUseCase
func NewAccessUseCase(
	gate *access.Gate,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) *AccessUseCase {
	return &AccessUseCase{
		gate:        gate,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// ResolveSession переводит токен в значение сессии для гейта.
// Отсутствующая или истёкшая сессия - гость; прочие ошибки провайдера передаются в Session.Err.
func (uc *AccessUseCase) ResolveSession(ctx context.Context, token string) domain.Session {
	if token == "" {
		return domain.AnonymousSession()
	}

	record, err := uc.sessionRepo.Resolve(ctx, token)
	if err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) || stderrors.Is(err, errors.ErrSessionExpired) {
			return domain.AnonymousSession()
		}
		uc.logger.Warn("Session resolution failed", zap.Error(err))
		return domain.FailedSession(err)
	}

	if record.Status == domain.SessionStatusPending {
		return domain.UnresolvedSession()
	}

	role, err := domain.ParseRole(record.Role)
	if err != nil {
		uc.logger.Warn("Session carries unknown role",
			zap.String("user_id", record.UserID),
			zap.String("role", record.Role))
		return domain.FailedSession(fmt.Errorf("session role: %w", err))
	}

	return domain.ResolvedSession(record.UserID, role)
}

// Decide - решение гейта для уже разрешённой сессии
func (uc *AccessUseCase) Decide(route string, session domain.Session) domain.AccessDecision {
	decision := uc.gate.CheckAccess(route, session)

	if decision.Denied() {
		uc.logger.Debug("Access denied",
			zap.String("route", route),
			zap.String("role", session.Role.String()),
			zap.String("reason", string(decision.Reason)),
			zap.String("redirect", decision.Redirect.String()))
	}

	return decision
}

// SignInRoute - экран входа из действующей политики
func (uc *AccessUseCase) SignInRoute() domain.Route {
	return uc.gate.Policy().Options().SignInRoute
}

// Check разрешает сессию по токену и проверяет доступ к экрану
func (uc *AccessUseCase) Check(ctx context.Context, route, token string) domain.AccessDecision {
	return uc.Decide(route, uc.ResolveSession(ctx, token))
}
