package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Catalog   CatalogConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Planner   PlannerConfig
	ML        MLConfig
	RateLimit RateLimitConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host          string
	Port          int
	Env           string
	PublicBaseURL string
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
}

// CatalogConfig - выбор хранилища каталога мест
type CatalogConfig struct {
	Driver     string // postgres | sqlite
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogCacheTTL   time.Duration
	ItineraryCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// PlannerConfig - точка старта/финиша маршрутов и заглушка стоимости входа
type PlannerConfig struct {
	AnchorName    string
	AnchorLat     float64
	AnchorLon     float64
	EntryCostStub float64
}

// MLConfig - внешний сервис рекомендаций
type MLConfig struct {
	Enabled        bool
	BaseURL        string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
	DatasetPath    string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional, the environment alone is enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return fromViper(), nil
}

// LoadFromEnv - загрузка только из переменных окружения (без .env файла)
func LoadFromEnv() *Config {
	viper.AutomaticEnv()
	return fromViper()
}

func fromViper() *Config {
	viper.SetDefault("ENTRY_COST_STUB", 500)

	cfg := &Config{
		Server: ServerConfig{
			Host:          viper.GetString("API_HOST"),
			Port:          viper.GetInt("API_PORT"),
			Env:           viper.GetString("API_ENV"),
			PublicBaseURL: viper.GetString("PUBLIC_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Catalog: CatalogConfig{
			Driver:     viper.GetString("CATALOG_DRIVER"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CatalogCacheTTL:   time.Duration(viper.GetInt("CATALOG_CACHE_TTL")) * time.Second,
			ItineraryCacheTTL: time.Duration(viper.GetInt("ITINERARY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Planner: PlannerConfig{
			AnchorName:    viper.GetString("ANCHOR_NAME"),
			AnchorLat:     viper.GetFloat64("ANCHOR_LAT"),
			AnchorLon:     viper.GetFloat64("ANCHOR_LON"),
			EntryCostStub: viper.GetFloat64("ENTRY_COST_STUB"),
		},
		ML: MLConfig{
			Enabled:        viper.GetBool("ML_ENABLED"),
			BaseURL:        viper.GetString("ML_BASE_URL"),
			HealthTimeout:  time.Duration(viper.GetInt("ML_HEALTH_TIMEOUT")) * time.Millisecond,
			RequestTimeout: time.Duration(viper.GetInt("ML_REQUEST_TIMEOUT")) * time.Millisecond,
			DatasetPath:    viper.GetString("ML_DATASET_PATH"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
		},
	}

	cfg.applyDefaults()
	return cfg
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Catalog.Driver == "" {
		c.Catalog.Driver = "postgres"
	}
	if c.Catalog.SQLitePath == "" {
		c.Catalog.SQLitePath = "data/places.db"
	}
	if c.Cache.CatalogCacheTTL == 0 {
		c.Cache.CatalogCacheTTL = 5 * time.Minute
	}
	if c.Cache.ItineraryCacheTTL == 0 {
		c.Cache.ItineraryCacheTTL = 24 * time.Hour
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Planner.AnchorName == "" {
		c.Planner.AnchorName = "Colombo"
	}
	if c.Planner.AnchorLat == 0 && c.Planner.AnchorLon == 0 {
		c.Planner.AnchorLat = 6.9271
		c.Planner.AnchorLon = 79.8612
	}
	if c.ML.BaseURL == "" {
		c.ML.BaseURL = "http://localhost:5000"
	}
	if c.ML.HealthTimeout <= 0 {
		c.ML.HealthTimeout = 2000 * time.Millisecond
	}
	if c.ML.RequestTimeout <= 0 {
		c.ML.RequestTimeout = 5000 * time.Millisecond
	}
	if c.ML.DatasetPath == "" {
		c.ML.DatasetPath = "ml/places_ml_data.csv"
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 2
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "dataset-refresh-workers"
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
