package main

// @title Tourism Directory API
// @version 1.0.0
// @description Каталог магазинов и достопримечательностей с ранжированием выдачи и ролевым гейтом доступа к экранам.
// @description
// @description Основные возможности:
// @description - Решение гейта доступа для экрана клиентского приложения
// @description - Выдача каталога в режимах trending, rating, distance, category, search
// @description - Оценки туристов с асинхронным пересчётом рейтинга
// @description - Статистика каталога для админ-панели

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourism-directory/docs"
	"github.com/tourism-directory/internal/access"
	"github.com/tourism-directory/internal/config"
	httpDelivery "github.com/tourism-directory/internal/delivery/http"
	"github.com/tourism-directory/internal/delivery/http/handler"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/logger"
	"github.com/tourism-directory/internal/ranking"
	"github.com/tourism-directory/internal/repository/cache"
	"github.com/tourism-directory/internal/repository/postgres"
	redisRepo "github.com/tourism-directory/internal/repository/redis"
	"github.com/tourism-directory/internal/repository/session"
	"github.com/tourism-directory/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Directory API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("session_backend", cfg.Access.SessionBackend),
	)

	// 3. Access policy
	policy, err := access.LoadPolicy(cfg.Access.PolicyFile, cfg.Access.DefaultEffect)
	if err != nil {
		log.Fatal("Invalid access policy", zap.Error(err))
	}
	if policy.Options().DefaultEffect == access.EffectAllow {
		log.Warn("Routes missing from the access policy are open to every role")
	}
	log.Info("Access policy loaded",
		zap.String("file", cfg.Access.PolicyFile),
		zap.Int("rules", len(policy.Rules())),
		zap.String("default_effect", string(policy.Options().DefaultEffect)),
	)

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 6. Initialize Repositories
	poiRepo := postgres.NewPOIRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	var sessionRepo repository.SessionRepository
	switch cfg.Access.SessionBackend {
	case "jwt":
		sessionRepo, err = session.NewJWTResolver(cfg.Access.JWTSecret, cfg.Access.JWTIssuer, log)
		if err != nil {
			log.Fatal("Failed to initialize JWT sessions", zap.Error(err))
		}
	case "redis":
		sessionRepo = session.NewRedisStore(redisClient.Client(), log)
	default:
		log.Fatal("Unknown session backend", zap.String("backend", cfg.Access.SessionBackend))
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	accessUC := usecase.NewAccessUseCase(access.NewGate(policy), sessionRepo, log)

	weights := ranking.TrendingWeights{
		Rating:     cfg.Ranking.TrendingRating,
		Recency:    cfg.Ranking.TrendingRecency,
		HalfLife:   cfg.Ranking.TrendingHalfLife,
		PriorVotes: ranking.DefaultTrendingWeights().PriorVotes,
		PriorMean:  ranking.DefaultTrendingWeights().PriorMean,
	}
	if err := weights.Validate(); err != nil {
		log.Fatal("Invalid trending weights", zap.Error(err))
	}

	directoryUC := usecase.NewDirectoryUseCase(poiRepo, cacheRepo, log, usecase.DirectoryOptions{
		DefaultLimit:    cfg.Ranking.DefaultLimit,
		MaxLimit:        cfg.Ranking.MaxLimit,
		DefaultRadiusKm: cfg.Ranking.DefaultRadiusKm,
		Weights:         weights,
		ListTTL:         cfg.Cache.POIListTTL,
		StatsTTL:        cfg.Cache.StatsTTL,
	})

	ratingUC := usecase.NewRatingUseCase(poiRepo, streamRepo, cacheRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		accessUC,
		map[string]httpDelivery.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		},
		handler.NewAccessHandler(accessUC, log),
		handler.NewDirectoryHandler(directoryUC, log),
		handler.NewRatingHandler(ratingUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
