package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tourism-directory/internal/config"
	"github.com/tourism-directory/internal/delivery/http/handler"
	"github.com/tourism-directory/internal/delivery/http/middleware"
	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, состояние которой отдаёт /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	guard  middleware.AccessChecker
	checks map[string]HealthChecker

	accessHandler    *handler.AccessHandler
	directoryHandler *handler.DirectoryHandler
	ratingHandler    *handler.RatingHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	guard middleware.AccessChecker,
	checks map[string]HealthChecker,
	accessHandler *handler.AccessHandler,
	directoryHandler *handler.DirectoryHandler,
	ratingHandler *handler.RatingHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Tourism Directory",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: cfg.Server.Env == "test",
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		guard:            guard,
		checks:           checks,
		accessHandler:    accessHandler,
		directoryHandler: directoryHandler,
		ratingHandler:    ratingHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(requestid.New())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Access gate
	api.Post("/access/check", s.accessHandler.Check)

	// Directory - открыт для всех, кто может открыть экран каталога
	directory := api.Group("/directory")
	directory.Post("/pois/:id/ratings",
		middleware.RequireRoute(s.guard, domain.RouteTouristReviews),
		s.ratingHandler.Submit)
	directory.Get("/:kind",
		middleware.RequireRoute(s.guard, domain.RouteDirectory),
		s.directoryHandler.List)

	// Admin
	admin := api.Group("/admin", middleware.RequireRoute(s.guard, domain.RouteAdminDashboard))
	admin.Get("/stats", s.directoryHandler.Stats)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "down"
			status = "degraded"
			continue
		}
		deps[name] = "up"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now().UTC(),
	})
}

// App - доступ к fiber.App для тестов (app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, паника) в формате utils.ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Error(err))
			}
			return utils.SendError(c, errors.New("HTTP_ERROR", e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
