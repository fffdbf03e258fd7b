package repository

import (
	"context"
	"time"
)

// CacheRepository - горячий кеш ответов провайдеров (маршруты, подсказки адресов)
type CacheRepository interface {
	// Get возвращает значение по ключу. Отсутствие ключа - nil, nil
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет ключ (вытеснение испорченной записи)
	Delete(ctx context.Context, key string) error
}
