package testhelpers

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/tourism-directory/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestDB - соединение с интеграционной БД
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к БД из TEST_DB_* или пропускает тест, если она недоступна.
// Соединение закрывается через t.Cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	if err != nil {
		t.Fatalf("invalid TEST_DB_PORT: %v", err)
	}

	cfg := config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "tourism_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		t.Skipf("Postgres not available for integration tests: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("Postgres not available for integration tests: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return &TestDB{
		DB:     db,
		Logger: zaptest.NewLogger(t),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
