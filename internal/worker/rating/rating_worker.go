package rating

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
	retryDelay      = 50 * time.Millisecond
	// claimMinIdle - через сколько неподтверждённое сообщение забирается повторно
	claimMinIdle = 30 * time.Second
)

// Applier - применение оценки к агрегату (RatingUseCase.Apply)
type Applier interface {
	Apply(ctx context.Context, event *domain.RatingSubmittedEvent) error
}

// RatingWorker применяет оценки из stream:poi:rating к рейтингу каталога
type RatingWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	applier      Applier
	consumerName string
	maxRetries   int
}

// NewRatingWorker создает новый RatingWorker
func NewRatingWorker(
	streamRepo repository.StreamRepository,
	applier Applier,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *RatingWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &RatingWorker{
		BaseWorker:   worker.NewBaseWorker("poi-rating", consumerGroup, logger),
		streamRepo:   streamRepo,
		applier:      applier,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:   maxRetries,
	}
}

// Start запускает цикл чтения батчей до Stop или отмены контекста
func (w *RatingWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RatingWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRatingSubmitted, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.pause(ctx, errorSleep)
			continue
		}

		if processed == 0 {
			w.pause(ctx, emptyQueueSleep)
		}
	}
}

// pause ждёт d, но просыпается по Stop и отмене контекста
func (w *RatingWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// processBatch возвращает количество прочитанных сообщений
func (w *RatingWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// сначала зависшие в pending (упавший consumer, ошибка после всех ретраев), потом новые
	messages, err := w.streamRepo.ClaimStale(
		ctx,
		domain.StreamRatingSubmitted,
		w.ConsumerGroup(),
		w.consumerName,
		claimMinIdle,
		maxBatchSize,
	)
	if err != nil {
		logger.Warn("Failed to claim stale messages", zap.Error(err))
		messages = nil
	}
	if len(messages) > 0 {
		logger.Info("Reclaimed pending ratings", zap.Int("count", len(messages)))
	}

	if free := maxBatchSize - len(messages); free > 0 {
		fresh, err := w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamRatingSubmitted,
			w.ConsumerGroup(),
			w.consumerName,
			free,
		)
		if err != nil && len(messages) == 0 {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
		if err != nil {
			logger.Error("Failed to consume batch, processing reclaimed only", zap.Error(err))
		}
		messages = append(messages, fresh...)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ackIDs := make([]string, 0, len(messages))
	applied := 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		err = w.applyWithRetry(ctx, event)
		switch {
		case err == nil:
			applied++
			ackIDs = append(ackIDs, msg.ID)
		case usecase.IsPermanent(err):
			logger.Warn("Rating rejected, skipping",
				zap.String("message_id", msg.ID),
				zap.String("poi_id", event.POIID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
		default:
			// остаётся в pending, через claimMinIdle его заберёт ClaimStale
			logger.Error("Rating not applied after retries",
				zap.String("message_id", msg.ID),
				zap.String("poi_id", event.POIID),
				zap.Int("attempts", w.maxRetries),
				zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRatingSubmitted, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("applied", applied),
		zap.Int("acked", len(ackIDs)))

	return len(messages), nil
}

func (w *RatingWorker) applyWithRetry(ctx context.Context, event *domain.RatingSubmittedEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		err = w.applier.Apply(ctx, event)
		if err == nil || usecase.IsPermanent(err) {
			return err
		}
		if attempt < w.maxRetries {
			w.pause(ctx, time.Duration(attempt)*retryDelay)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
	return err
}

func parseMessage(msg domain.StreamMessage) (*domain.RatingSubmittedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var event domain.RatingSubmittedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if event.POIID == "" {
		return nil, fmt.Errorf("event without poi_id")
	}

	return &event, nil
}
