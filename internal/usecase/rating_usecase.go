package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/validator"
	"github.com/tourism-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	minScore = 1
	maxScore = 5
)

// RatingUseCase принимает оценки туристов и применяет их к агрегату рейтинга
type RatingUseCase struct {
	poiRepo    repository.POIRepository
	streamRepo repository.StreamRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewRatingUseCase создает новый экземпляр RatingUseCase
func NewRatingUseCase(
	poiRepo repository.POIRepository,
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *RatingUseCase {
	return &RatingUseCase{
		poiRepo:    poiRepo,
		streamRepo: streamRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit ставит оценку в очередь. Агрегат обновляет воркер.
func (uc *RatingUseCase) Submit(ctx context.Context, userID, poiID string, req dto.RatingRequest) (*dto.RatingAcceptedResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRating
	}

	if _, err := uc.poiRepo.GetByID(ctx, poiID); err != nil {
		return nil, err
	}

	event := &domain.RatingSubmittedEvent{
		EventID:     uuid.New(),
		POIID:       poiID,
		UserID:      userID,
		Score:       req.Score,
		SubmittedAt: uc.now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRatingSubmitted, event); err != nil {
		uc.logger.Error("Failed to publish rating",
			zap.String("poi_id", poiID),
			zap.Error(err))
		return nil, errors.ErrStreamError
	}

	uc.logger.Info("Rating submitted",
		zap.String("event_id", event.EventID.String()),
		zap.String("poi_id", poiID),
		zap.String("user_id", userID))

	return &dto.RatingAcceptedResponse{
		EventID: event.EventID,
		POIID:   poiID,
		Status:  "accepted",
	}, nil
}

// Apply добавляет оценку к агрегату и сбрасывает кеш каталога
func (uc *RatingUseCase) Apply(ctx context.Context, event *domain.RatingSubmittedEvent) error {
	if event == nil || event.POIID == "" || event.Score < minScore || event.Score > maxScore {
		return errors.ErrInvalidRating
	}

	poi, err := uc.poiRepo.ApplyRating(ctx, event.POIID, event.Score)
	if err != nil {
		return err
	}

	if err := uc.cacheRepo.InvalidateDirectory(ctx, poi.Kind); err != nil {
		// TTL всё равно уберёт устаревшую выдачу
		uc.logger.Warn("Failed to invalidate directory cache",
			zap.String("kind", string(poi.Kind)),
			zap.Error(err))
	}

	uc.logger.Debug("Rating applied",
		zap.String("event_id", event.EventID.String()),
		zap.String("poi_id", poi.ID),
		zap.Float64("rating", poi.Rating),
		zap.Int("rating_count", poi.RatingCount))

	return nil
}

// IsPermanent - ошибки Apply, которые не исправит повторная попытка
func IsPermanent(err error) bool {
	return stderrors.Is(err, errors.ErrInvalidRating) || stderrors.Is(err, errors.ErrPOINotFound)
}
