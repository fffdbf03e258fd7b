package repository

import (
	"context"
	"time"

	"github.com/supply-route-service/internal/domain"
)

// DirectionsCacheRepository - долговременное хранилище ответов провайдера
type DirectionsCacheRepository interface {
	// Get возвращает запись не старше maxAge. Отсутствие записи - nil, nil
	Get(ctx context.Context, origin, destination string, maxAge time.Duration) (*domain.DirectionsCacheEntry, error)

	// Upsert сохраняет или обновляет запись
	Upsert(ctx context.Context, entry *domain.DirectionsCacheEntry) error

	// DeleteOlderThan удаляет устаревшие записи и возвращает их количество
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
