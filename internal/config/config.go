package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Access   AccessConfig
	Ranking  RankingConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// ConnectRetries - сколько раз пробовать достучаться до БД при старте
	ConnectRetries int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	POIListTTL time.Duration
	StatsTTL   time.Duration
}

type LogConfig struct {
	Level string
}

// AccessConfig - настройки гейта доступа и провайдера сессий
type AccessConfig struct {
	// PolicyFile - YAML с таблицей маршрутов; пусто - встроенная таблица
	PolicyFile string
	// DefaultEffect - allow | deny для маршрутов вне таблицы
	DefaultEffect string
	// SessionBackend - redis | jwt
	SessionBackend string
	JWTSecret      string
	JWTIssuer      string
}

type RankingConfig struct {
	DefaultLimit     int
	MaxLimit         int
	DefaultRadiusKm  float64
	TrendingRating   float64
	TrendingRecency  float64
	TrendingHalfLife time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

// Load читает .env из рабочей директории и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает указанный env-файл; отсутствие файла не ошибка, значения берутся из окружения
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectRetries:  v.GetInt("DB_CONNECT_RETRIES"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			POIListTTL: time.Duration(v.GetInt("POI_LIST_CACHE_TTL")) * time.Second,
			StatsTTL:   time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Access: AccessConfig{
			PolicyFile:     v.GetString("ACCESS_POLICY_FILE"),
			DefaultEffect:  strings.ToLower(v.GetString("ACCESS_DEFAULT_EFFECT")),
			SessionBackend: strings.ToLower(v.GetString("SESSION_BACKEND")),
			JWTSecret:      v.GetString("SESSION_JWT_SECRET"),
			JWTIssuer:      v.GetString("SESSION_JWT_ISSUER"),
		},
		Ranking: RankingConfig{
			DefaultLimit:     v.GetInt("RANKING_DEFAULT_LIMIT"),
			MaxLimit:         v.GetInt("RANKING_MAX_LIMIT"),
			DefaultRadiusKm:  v.GetFloat64("RANKING_DEFAULT_RADIUS_KM"),
			TrendingRating:   v.GetFloat64("TRENDING_RATING_WEIGHT"),
			TrendingRecency:  v.GetFloat64("TRENDING_RECENCY_WEIGHT"),
			TrendingHalfLife: time.Duration(v.GetInt("TRENDING_HALF_LIFE_HOURS")) * time.Hour,
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.CORSOrigins == "" {
		c.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnectRetries == 0 {
		c.Database.ConnectRetries = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.POIListTTL == 0 {
		c.Cache.POIListTTL = 5 * time.Minute
	}
	if c.Cache.StatsTTL == 0 {
		c.Cache.StatsTTL = 10 * time.Minute
	}
	if c.Access.DefaultEffect == "" {
		c.Access.DefaultEffect = "allow"
	}
	if c.Access.SessionBackend == "" {
		c.Access.SessionBackend = "redis"
	}
	if c.Ranking.DefaultLimit == 0 {
		c.Ranking.DefaultLimit = 20
	}
	if c.Ranking.MaxLimit == 0 {
		c.Ranking.MaxLimit = 100
	}
	if c.Ranking.DefaultRadiusKm == 0 {
		c.Ranking.DefaultRadiusKm = 5
	}
	if c.Ranking.TrendingRating == 0 && c.Ranking.TrendingRecency == 0 {
		c.Ranking.TrendingRating = 0.7
		c.Ranking.TrendingRecency = 0.3
	}
	if c.Ranking.TrendingHalfLife == 0 {
		c.Ranking.TrendingHalfLife = 30 * 24 * time.Hour
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "poi-rating-workers"
	}
	if c.Worker.MaxRetries == 0 {
		c.Worker.MaxRetries = 3
	}
}

// validate отсекает значения, с которыми сервис запустится, но будет молча отдавать пустую выдачу
func (c *Config) validate() error {
	r := c.Ranking
	for name, v := range map[string]float64{
		"TRENDING_RATING_WEIGHT":    r.TrendingRating,
		"TRENDING_RECENCY_WEIGHT":   r.TrendingRecency,
		"RANKING_DEFAULT_RADIUS_KM": r.DefaultRadiusKm,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid config: %s must be a non-negative number, got %v", name, v)
		}
	}
	if r.TrendingHalfLife < 0 {
		return fmt.Errorf("invalid config: TRENDING_HALF_LIFE_HOURS must not be negative")
	}
	if r.DefaultLimit < 0 || r.MaxLimit < 0 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("invalid config: RANKING_DEFAULT_LIMIT (%d) must be within 1..RANKING_MAX_LIMIT (%d)",
			r.DefaultLimit, r.MaxLimit)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN - строка подключения в формате key=value, понятном pgx и lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
