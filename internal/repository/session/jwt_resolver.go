package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

// Claims - полезная нагрузка токена провайдера идентификации
type Claims struct {
	Role    string `json:"role"`
	Pending bool   `json:"pending,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver разрешает сессии из HS256-токенов без обращения к хранилищу
type JWTResolver struct {
	secret []byte
	issuer string
	logger *zap.Logger
	now    func() time.Time
}

var _ repository.SessionRepository = (*JWTResolver)(nil)

func NewJWTResolver(secret, issuer string, logger *zap.Logger) (*JWTResolver, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTResolver{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (r *JWTResolver) Resolve(_ context.Context, token string) (*domain.SessionRecord, error) {
	if token == "" {
		return nil, errors.ErrSessionNotFound
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(r.now),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrSessionExpired
		}
		r.logger.Debug("Rejected session token", zap.Error(err))
		return nil, errors.ErrUnauthorized.WithDetails(map[string]interface{}{"reason": err.Error()})
	}

	record := &domain.SessionRecord{
		UserID: claims.Subject,
		Role:   claims.Role,
		Status: domain.SessionStatusActive,
	}
	if claims.Pending {
		record.Status = domain.SessionStatusPending
	}
	if claims.ExpiresAt != nil {
		record.ExpiresAt = claims.ExpiresAt.Time
	}

	return record, nil
}
