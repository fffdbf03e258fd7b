package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
)

const pingTimeout = 5 * time.Second

// Redis - подключение к Redis, общее для кеша маршрутов, подсказок и стримов заявок
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis открывает клиент и проверяет соединение
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	r := NewRedisFromClient(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := r.Health(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	r.logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return r, nil
}

// NewRedisFromClient оборачивает готовый клиент (интеграционные тесты)
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Close() error {
	stats := r.client.PoolStats()
	r.logger.Info("Closing Redis connection",
		zap.Uint32("total_conns", stats.TotalConns),
		zap.Uint32("timeouts", stats.Timeouts))
	return r.client.Close()
}

// Health пингует сервер
func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis %s: %w", r.client.Options().Addr, err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
