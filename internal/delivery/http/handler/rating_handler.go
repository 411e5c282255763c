package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-directory/internal/delivery/http/middleware"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// RatingHandler принимает оценки туристов
type RatingHandler struct {
	ratingUC RatingService
	logger   *zap.Logger
}

// NewRatingHandler создает новый экземпляр RatingHandler
func NewRatingHandler(ratingUC RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// Submit godoc
// @Summary Rate a point of interest
// @Description Ставит оценку в очередь; рейтинг обновляется асинхронно
// @Tags Directory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "POI ID"
// @Param request body dto.RatingRequest true "Score 1..5"
// @Success 202 {object} utils.SuccessResponse{data=dto.RatingAcceptedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/directory/pois/{id}/ratings [post]
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok || session.UserID == "" {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.ratingUC.Submit(c.UserContext(), session.UserID, c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, resp, nil)
}
