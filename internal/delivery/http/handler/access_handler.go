package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-directory/internal/delivery/http/middleware"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/pkg/validator"
	"github.com/tourism-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// AccessHandler отдаёт решения гейта клиентскому роутеру
type AccessHandler struct {
	accessUC AccessService
	logger   *zap.Logger
}

// NewAccessHandler создает новый экземпляр AccessHandler
func NewAccessHandler(accessUC AccessService, logger *zap.Logger) *AccessHandler {
	return &AccessHandler{
		accessUC: accessUC,
		logger:   logger,
	}
}

// Check godoc
// @Summary Check screen access
// @Description Решение гейта для экрана: allowed, denied (с redirect) или pending
// @Tags Access
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param request body dto.AccessCheckRequest true "Route to open"
// @Success 200 {object} dto.AccessCheckResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/access/check [post]
func (h *AccessHandler) Check(c *fiber.Ctx) error {
	var req dto.AccessCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	decision := h.accessUC.Check(c.UserContext(), req.Route, middleware.BearerToken(c))

	return utils.SendSuccess(c, dto.AccessCheckResponse{
		Outcome:  string(decision.Outcome),
		Redirect: decision.Redirect.String(),
	}, nil)
}
