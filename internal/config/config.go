package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Google   GoogleConfig
	Route    RouteConfig
	Map      MapConfig
	Backend  BackendConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Janitor  JanitorConfig
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
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Addr - host:port для клиента go-redis
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GoogleConfig - доступ к Directions и Places API
type GoogleConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	PlacesCountry  string
}

// RouteConfig - параметры расчета стоимости маршрута
type RouteConfig struct {
	TariffPerKm float64
}

// MapConfig - параметры отрисовки
type MapConfig struct {
	ReadyTimeout time.Duration
	FitPadding   int
}

// BackendConfig - REST backend заявок и складов
type BackendConfig struct {
	BaseURL        string
	APIToken       string
	RequestTimeout time.Duration
}

type CacheConfig struct {
	RouteCacheTTL      time.Duration
	RouteDBCacheMaxAge time.Duration
	PlacesCacheTTL     time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	BatchSize         int
	MaxRetries        int
	ClaimIdle         time.Duration // через сколько неподтверждённое сообщение забирается повторно
}

// JanitorConfig - периодическая очистка диалогов и кеша маршрутов
type JanitorConfig struct {
	Interval          time.Duration
	DialogIdleTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "supply_routes")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 20)

	v.SetDefault("GOOGLE_BASE_URL", "https://maps.googleapis.com")
	v.SetDefault("GOOGLE_REQUEST_TIMEOUT", 15)
	v.SetDefault("PLACES_COUNTRY", "mm")

	v.SetDefault("ROUTE_TARIFF_PER_KM", 550)
	v.SetDefault("ROUTE_CACHE_TTL", 600)
	v.SetDefault("ROUTE_DB_CACHE_MAX_AGE", 86400)
	v.SetDefault("PLACES_CACHE_TTL", 300)

	v.SetDefault("MAP_READY_TIMEOUT", 5000)
	v.SetDefault("MAP_FIT_PADDING", 50)

	v.SetDefault("BACKEND_BASE_URL", "http://127.0.0.1:8000/api")
	v.SetDefault("BACKEND_REQUEST_TIMEOUT", 15)

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONSUMER_GROUP", "route-ledger-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_CLAIM_IDLE", 30000)

	v.SetDefault("JANITOR_INTERVAL", 60)
	v.SetDefault("DIALOG_IDLE_TIMEOUT", 1800)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного env-файла и окружения.
// Отсутствующий файл не является ошибкой
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
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
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		Google: GoogleConfig{
			APIKey:         v.GetString("GOOGLE_API_KEY"),
			BaseURL:        v.GetString("GOOGLE_BASE_URL"),
			RequestTimeout: time.Duration(v.GetInt("GOOGLE_REQUEST_TIMEOUT")) * time.Second,
			PlacesCountry:  v.GetString("PLACES_COUNTRY"),
		},
		Route: RouteConfig{
			TariffPerKm: v.GetFloat64("ROUTE_TARIFF_PER_KM"),
		},
		Map: MapConfig{
			ReadyTimeout: time.Duration(v.GetInt("MAP_READY_TIMEOUT")) * time.Millisecond,
			FitPadding:   v.GetInt("MAP_FIT_PADDING"),
		},
		Backend: BackendConfig{
			BaseURL:        v.GetString("BACKEND_BASE_URL"),
			APIToken:       v.GetString("BACKEND_API_TOKEN"),
			RequestTimeout: time.Duration(v.GetInt("BACKEND_REQUEST_TIMEOUT")) * time.Second,
		},
		Cache: CacheConfig{
			RouteCacheTTL:      time.Duration(v.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			RouteDBCacheMaxAge: time.Duration(v.GetInt("ROUTE_DB_CACHE_MAX_AGE")) * time.Second,
			PlacesCacheTTL:     time.Duration(v.GetInt("PLACES_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			ClaimIdle:         time.Duration(v.GetInt("WORKER_CLAIM_IDLE")) * time.Millisecond,
		},
		Janitor: JanitorConfig{
			Interval:          time.Duration(v.GetInt("JANITOR_INTERVAL")) * time.Second,
			DialogIdleTimeout: time.Duration(v.GetInt("DIALOG_IDLE_TIMEOUT")) * time.Second,
		},
	}

	if cfg.Route.TariffPerKm < 0 {
		return nil, fmt.Errorf("ROUTE_TARIFF_PER_KM must not be negative, got %v", cfg.Route.TariffPerKm)
	}
	if cfg.Worker.BatchSize <= 0 {
		cfg.Worker.BatchSize = 20
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value, application_name помечает соединения сервиса
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=supply-route-service",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}
