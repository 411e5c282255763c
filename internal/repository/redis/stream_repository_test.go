package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	redisRepo "github.com/tourism-directory/internal/repository/redis"
)

const testStream = "test:stream:poi:rating"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		client.Close()
	})

	return client
}

func newEvent(poiID string, score int) *domain.RatingSubmittedEvent {
	return &domain.RatingSubmittedEvent{
		EventID:     uuid.New(),
		POIID:       poiID,
		UserID:      "user-1",
		Score:       score,
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testStream, "test-group")
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// повторное создание - BUSYGROUP
	err = repo.CreateConsumerGroup(ctx, testStream, "test-group")
	assert.NoError(t, err)
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	event := newEvent("shop-1", 5)
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.RatingSubmittedEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, event.EventID, received.EventID)
	assert.Equal(t, "shop-1", received.POIID)
	assert.Equal(t, 5, received.Score)
}

func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "batch-group"))

	// пустой стрим - пустой батч без ошибки
	messages, err := repo.ConsumeBatch(ctx, testStream, "batch-group", "consumer-1", 20)
	require.NoError(t, err)
	assert.Empty(t, messages)

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("shop-1", i)))
	}

	messages, err = repo.ConsumeBatch(ctx, testStream, "batch-group", "consumer-1", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	var first domain.RatingSubmittedEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &first))
	assert.Equal(t, 1, first.Score)

	messages, err = repo.ConsumeBatch(ctx, testStream, "batch-group", "consumer-1", 2)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestStreamRepository_AckMessages(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "ack-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("shop-1", 4)))
	require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("shop-2", 3)))

	messages, err := repo.ConsumeBatch(ctx, testStream, "ack-group", "consumer-1", 20)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	pending, err := client.XPending(ctx, testStream, "ack-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, "ack-group", messages[0].ID))
	require.NoError(t, repo.AckMessages(ctx, testStream, "ack-group", []string{messages[1].ID}))
	require.NoError(t, repo.AckMessages(ctx, testStream, "ack-group", nil))

	pending, err = client.XPending(ctx, testStream, "ack-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ClaimStale(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "claim-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("shop-1", 2)))

	// consumer-1 прочитал и не подтвердил
	read, err := repo.ConsumeBatch(ctx, testStream, "claim-group", "consumer-1", 20)
	require.NoError(t, err)
	require.Len(t, read, 1)

	// пока сообщение свежее, забирать нечего
	claimed, err := repo.ClaimStale(ctx, testStream, "claim-group", "consumer-2", time.Hour, 20)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	claimed, err = repo.ClaimStale(ctx, testStream, "claim-group", "consumer-2", 0, 20)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, read[0].ID, claimed[0].ID)
	assert.Equal(t, read[0].Data, claimed[0].Data)

	pending, err := client.XPending(ctx, testStream, "claim-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Consumers["consumer-2"])
}
