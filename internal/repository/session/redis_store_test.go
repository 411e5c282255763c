package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func TestKey(t *testing.T) {
	assert.Equal(t, "session:abc", Key("abc"))
}

func TestRedisStore_Resolve(t *testing.T) {
	client := getTestRedisClient(t)
	store := NewRedisStore(client, zap.NewNop())
	store.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	tokens := []string{"test-active", "test-pending", "test-expired", "test-broken"}
	t.Cleanup(func() {
		for _, tok := range tokens {
			client.Del(context.Background(), Key(tok))
		}
	})

	require.NoError(t, store.Save(ctx, "test-active", &domain.SessionRecord{
		UserID: "user-1", Role: "tourist", Status: domain.SessionStatusActive,
		ExpiresAt: fixedNow.Add(time.Hour),
	}, time.Minute))
	require.NoError(t, store.Save(ctx, "test-pending", &domain.SessionRecord{
		Status: domain.SessionStatusPending,
	}, time.Minute))
	require.NoError(t, store.Save(ctx, "test-expired", &domain.SessionRecord{
		UserID: "user-2", Role: "tourist", Status: domain.SessionStatusActive,
		ExpiresAt: fixedNow.Add(-time.Second),
	}, time.Minute))
	require.NoError(t, client.Set(ctx, Key("test-broken"), "{not json", time.Minute).Err())

	record, err := store.Resolve(ctx, "test-active")
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "tourist", record.Role)

	record, err = store.Resolve(ctx, "test-pending")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusPending, record.Status)

	_, err = store.Resolve(ctx, "test-expired")
	assert.ErrorIs(t, err, errors.ErrSessionExpired)

	_, err = store.Resolve(ctx, "test-missing")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)

	_, err = store.Resolve(ctx, "")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)

	_, err = store.Resolve(ctx, "test-broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrSessionNotFound)

	require.NoError(t, store.Revoke(ctx, "test-active"))
	_, err = store.Resolve(ctx, "test-active")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}
