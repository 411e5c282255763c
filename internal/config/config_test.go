package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/config"
)

func TestLoadFrom_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "API_HOST=0.0.0.0\nAPI_PORT=9090\nDB_HOST=db\nDB_PORT=5432\nREDIS_HOST=cache\nREDIS_PORT=6379\n" +
		"ACCESS_DEFAULT_EFFECT=DENY\nSESSION_BACKEND=jwt\nPOI_LIST_CACHE_TTL=60\nTRENDING_HALF_LIFE_HOURS=48\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db port=5432")
	assert.Equal(t, "deny", cfg.Access.DefaultEffect)
	assert.Equal(t, "jwt", cfg.Access.SessionBackend)
	assert.Equal(t, time.Minute, cfg.Cache.POIListTTL)
	assert.Equal(t, 48*time.Hour, cfg.Ranking.TrendingHalfLife)
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "allow", cfg.Access.DefaultEffect)
	assert.Equal(t, "redis", cfg.Access.SessionBackend)
	assert.Equal(t, 20, cfg.Ranking.DefaultLimit)
	assert.Equal(t, 100, cfg.Ranking.MaxLimit)
	assert.Equal(t, 0.7, cfg.Ranking.TrendingRating)
	assert.Equal(t, "poi-rating-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := config.DatabaseConfig{
		Host: "pg", Port: 5432, User: "app", Password: "secret", DBName: "tourism", SSLMode: "require",
	}
	assert.Equal(t, "host=pg port=5432 user=app password=secret dbname=tourism sslmode=require", db.DSN())
	assert.Equal(t, "redis:6380", config.RedisConfig{Host: "redis", Port: 6380}.Addr())
}

func TestLoadFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RANKING_DEFAULT_LIMIT", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Ranking.DefaultLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_RejectsInvalidRanking(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"negative rating weight", "TRENDING_RATING_WEIGHT", "-0.7"},
		{"negative recency weight", "TRENDING_RECENCY_WEIGHT", "-1"},
		{"negative half-life", "TRENDING_HALF_LIFE_HOURS", "-24"},
		{"default limit above max", "RANKING_DEFAULT_LIMIT", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
