package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

// Key - ключ записи сессии в Redis
func Key(token string) string {
	return keyPrefix + token
}

// RedisStore читает сессии, которые провайдер идентификации пишет в Redis
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

var _ repository.SessionRepository = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*domain.SessionRecord, error) {
	if token == "" {
		return nil, errors.ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, Key(token)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read session", zap.Error(err))
		return nil, fmt.Errorf("session get: %w", err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn("Malformed session record", zap.Error(err))
		return nil, fmt.Errorf("session decode: %w", err)
	}

	if record.Expired(s.now()) {
		return nil, errors.ErrSessionExpired
	}

	return &record, nil
}

// Save пишет запись сессии; используется провайдером и в тестах
func (s *RedisStore) Save(ctx context.Context, token string, record *domain.SessionRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := s.client.Set(ctx, Key(token), data, ttl).Err(); err != nil {
		s.logger.Error("Failed to save session", zap.Error(err))
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Revoke удаляет сессию
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, Key(token)).Err(); err != nil {
		return fmt.Errorf("session del: %w", err)
	}
	return nil
}
