package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/pkg/validator"
	"github.com/tourism-directory/internal/ranking"
	"github.com/tourism-directory/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const topRatedPerKind = 3

// DirectoryOptions - настройки выдачи каталога
type DirectoryOptions struct {
	DefaultLimit    int
	MaxLimit        int
	DefaultRadiusKm float64
	Weights         ranking.TrendingWeights
	ListTTL         time.Duration
	StatsTTL        time.Duration
}

// DirectoryUseCase - выдача каталога магазинов и достопримечательностей
type DirectoryUseCase struct {
	poiRepo   repository.POIRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	opts      DirectoryOptions
}

// NewDirectoryUseCase создает новый экземпляр DirectoryUseCase
func NewDirectoryUseCase(
	poiRepo repository.POIRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	opts DirectoryOptions,
) *DirectoryUseCase {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = opts.DefaultLimit
	}
	return &DirectoryUseCase{
		poiRepo:   poiRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		opts:      opts,
	}
}

// List возвращает ранжированную выдачу одного типа каталога
func (uc *DirectoryUseCase) List(ctx context.Context, req dto.DirectoryRequest) (*dto.DirectoryResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	kind, err := domain.ParsePOIKind(req.Kind)
	if err != nil {
		return nil, errors.ErrInvalidPOIKind
	}

	rankReq, err := uc.buildRankRequest(req)
	if err != nil {
		return nil, err
	}

	items, cached, err := uc.loadKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	// категория сужает выдачу и в остальных режимах
	if req.Category != "" && rankReq.Mode != ranking.ModeCategory {
		items = ranking.ByCategory(items, req.Category)
	}

	ranked := ranking.Rank(items, rankReq)

	resp := &dto.DirectoryResponse{
		Items:  make([]dto.POIItem, 0, len(ranked)),
		Total:  len(ranked),
		Mode:   string(rankReq.Mode),
		Limit:  rankReq.Limit,
		Cached: cached,
	}
	for _, p := range ranked {
		resp.Items = append(resp.Items, toPOIItem(p, rankReq.Origin))
	}

	uc.logger.Debug("Directory listed",
		zap.String("kind", string(kind)),
		zap.String("mode", resp.Mode),
		zap.Int("candidates", len(items)),
		zap.Int("returned", resp.Total),
		zap.Bool("cached", cached))

	return resp, nil
}

func (uc *DirectoryUseCase) buildRankRequest(req dto.DirectoryRequest) (ranking.Request, error) {
	mode := ranking.ModeTrending
	if req.Mode != "" {
		m, err := ranking.ParseMode(req.Mode)
		if err != nil {
			return ranking.Request{}, errors.ErrInvalidRankingMode
		}
		mode = m
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.opts.DefaultLimit
	}
	if limit > uc.opts.MaxLimit {
		limit = uc.opts.MaxLimit
	}

	weights := uc.opts.Weights
	out := ranking.Request{
		Mode:     mode,
		Category: req.Category,
		Query:    req.Query,
		Weights:  &weights,
		Limit:    limit,
	}

	if (req.Lat == nil) != (req.Lon == nil) {
		return ranking.Request{}, errors.ErrInvalidCoordinates
	}
	if req.Lat != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return ranking.Request{}, errors.ErrInvalidCoordinates
		}
		out.Origin = &domain.Point{Lat: *req.Lat, Lon: *req.Lon}
	}

	out.MaxDistanceKm = uc.opts.DefaultRadiusKm
	if req.RadiusKm != nil {
		out.MaxDistanceKm = *req.RadiusKm
	}

	switch mode {
	case ranking.ModeDistance:
		if out.Origin == nil {
			return ranking.Request{}, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"error": "lat and lon are required for distance mode",
			})
		}
	case ranking.ModeCategory:
		if req.Category == "" {
			return ranking.Request{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"error": "category is required for category mode",
			})
		}
	}

	return out, nil
}

// loadKind читает коллекцию типа через кеш; ошибки кеша не фатальны
func (uc *DirectoryUseCase) loadKind(ctx context.Context, kind domain.POIKind) ([]*domain.PointOfInterest, bool, error) {
	cached, err := uc.cacheRepo.GetPOIList(ctx, kind)
	if err != nil {
		uc.logger.Warn("Failed to get POI list from cache",
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
	if err == nil && cached != nil {
		return cached, true, nil
	}

	pois, err := uc.poiRepo.List(ctx, domain.POIFilter{Kind: kind})
	if err != nil {
		return nil, false, fmt.Errorf("list %s: %w", kind, err)
	}

	if err := uc.cacheRepo.SetPOIList(ctx, kind, pois, uc.opts.ListTTL); err != nil {
		uc.logger.Warn("Failed to cache POI list",
			zap.String("kind", string(kind)),
			zap.Error(err))
	}

	return pois, false, nil
}

// Stats - сводка каталога и лучшие по рейтингу записи каждого типа
func (uc *DirectoryUseCase) Stats(ctx context.Context) (*dto.DirectoryStatsResponse, error) {
	kinds := domain.AllPOIKinds()
	top := make([][]*domain.PointOfInterest, len(kinds))
	var stats *domain.DirectoryStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := uc.loadStats(gctx)
		if err != nil {
			return err
		}
		stats = s
		return nil
	})

	for i, kind := range kinds {
		g.Go(func() error {
			items, _, err := uc.loadKind(gctx, kind)
			if err != nil {
				return err
			}
			top[i] = ranking.Rank(items, ranking.Request{Mode: ranking.ModeRating, Limit: topRatedPerKind})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.DirectoryStatsResponse{
		Stats:    stats,
		TopRated: make(map[string][]dto.POIItem, len(kinds)),
	}
	for i, kind := range kinds {
		items := make([]dto.POIItem, 0, len(top[i]))
		for _, p := range top[i] {
			items = append(items, toPOIItem(p, nil))
		}
		resp.TopRated[string(kind)] = items
	}

	return resp, nil
}

func (uc *DirectoryUseCase) loadStats(ctx context.Context) (*domain.DirectoryStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Directory stats fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	stats, err := uc.poiRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directory stats: %w", err)
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.opts.StatsTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}

func toPOIItem(p *domain.PointOfInterest, origin *domain.Point) dto.POIItem {
	item := dto.POIItem{
		ID:          p.ID,
		Kind:        string(p.Kind),
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Address:     p.Address,
		RatingCount: p.RatingCount,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Rated() {
		r := p.Rating
		item.Rating = &r
	}
	if p.Location != nil {
		loc := *p.Location
		item.Location = &loc
		if origin != nil {
			d := utils.HaversineDistance(origin.Lat, origin.Lon, loc.Lat, loc.Lon)
			item.DistanceKm = &d
		}
	}
	return item
}
