//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/tourism-directory/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	poiID := flag.String("poi", "shop-1", "POI to rate")
	score := flag.Int("score", 5, "score 1..5")
	group := flag.String("group", "poi-rating-workers", "worker consumer group")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.RatingSubmittedEvent{
		EventID:     uuid.New(),
		POIID:       *poiID,
		UserID:      "script",
		Score:       *score,
		SubmittedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRatingSubmitted,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRatingSubmitted)
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   POI: %s, score %d\n", event.POIID, event.Score)

	// Ждём, пока воркер заберёт и подтвердит сообщение
	fmt.Printf("\nWaiting for group %s to ack...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for ack")
			return
		case <-ticker.C:
			if acked(ctx, client, *group, msgID) {
				fmt.Println("Message processed and acked")
				return
			}
		}
	}
}

func acked(ctx context.Context, client *redis.Client, group, msgID string) bool {
	groups, err := client.XInfoGroups(ctx, domain.StreamRatingSubmitted).Result()
	if err != nil {
		return false
	}

	delivered := false
	for _, g := range groups {
		if g.Name == group && g.LastDeliveredID >= msgID {
			delivered = true
		}
	}
	if !delivered {
		return false
	}

	pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: domain.StreamRatingSubmitted,
		Group:  group,
		Start:  msgID,
		End:    msgID,
		Count:  1,
	}).Result()
	return err == nil && len(pending) == 0
}
