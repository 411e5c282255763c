package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// DirectoryHandler - выдача каталога магазинов и достопримечательностей
type DirectoryHandler struct {
	directoryUC DirectoryService
	logger      *zap.Logger
}

// NewDirectoryHandler создает новый экземпляр DirectoryHandler
func NewDirectoryHandler(directoryUC DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
		logger:      logger,
	}
}

// List godoc
// @Summary Ranked directory listing
// @Description Список магазинов или достопримечательностей в режиме trending, rating, distance, category или search
// @Tags Directory
// @Produce json
// @Param kind path string true "shops | spots"
// @Param mode query string false "trending | rating | distance | category | search"
// @Param lat query number false "Latitude of the origin"
// @Param lon query number false "Longitude of the origin"
// @Param radius_km query number false "Max distance for distance mode"
// @Param category query string false "Category filter"
// @Param q query string false "Text query for search mode"
// @Param limit query int false "Max items"
// @Success 200 {object} utils.SuccessResponse{data=dto.DirectoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/directory/{kind} [get]
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	start := time.Now()

	req := dto.DirectoryRequest{
		Kind:     c.Params("kind"),
		Mode:     c.Query("mode"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}

	var err error
	if req.Lat, err = optionalFloat(c, "lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.Lon, err = optionalFloat(c, "lon"); err != nil {
		return utils.SendError(c, err)
	}
	if req.RadiusKm, err = optionalFloat(c, "radius_km"); err != nil {
		return utils.SendError(c, err)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"limit": raw,
			}))
		}
		req.Limit = limit
	}

	resp, err := h.directoryUC.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    resp.Total,
		Limit:    resp.Limit,
		Mode:     resp.Mode,
		Cached:   resp.Cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// Stats godoc
// @Summary Directory statistics
// @Description Сводка каталога и лучшие записи каждого типа (для админ-панели)
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} utils.SuccessResponse{data=dto.DirectoryStatsResponse}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/admin/stats [get]
func (h *DirectoryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.directoryUC.Stats(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get directory stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			key: raw,
		})
	}
	return &v, nil
}
