package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
)

type directionsCacheRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewDirectionsCacheRepository создает хранилище ответов Directions API
func NewDirectionsCacheRepository(db *DB, logger *zap.Logger) repository.DirectionsCacheRepository {
	return &directionsCacheRepository{
		db:     db,
		logger: logger,
	}
}

func (r *directionsCacheRepository) Get(
	ctx context.Context,
	origin, destination string,
	maxAge time.Duration,
) (*domain.DirectionsCacheEntry, error) {
	query := `
		SELECT origin, destination, payload, fetched_at
		FROM directions_cache
		WHERE origin = $1 AND destination = $2 AND fetched_at >= $3
	`

	var entry domain.DirectionsCacheEntry
	err := r.db.GetContext(ctx, &entry, query, origin, destination, time.Now().Add(-maxAge))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get directions cache entry",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err))
		return nil, fmt.Errorf("get directions cache entry: %w", err)
	}

	return &entry, nil
}

func (r *directionsCacheRepository) Upsert(ctx context.Context, entry *domain.DirectionsCacheEntry) error {
	query := `
		INSERT INTO directions_cache (origin, destination, payload, fetched_at)
		VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT (origin, destination)
		DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
	`

	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.Origin, entry.Destination, string(entry.Payload), entry.FetchedAt)
	if err != nil {
		r.logger.Error("failed to upsert directions cache entry",
			zap.String("origin", entry.Origin),
			zap.String("destination", entry.Destination),
			zap.Error(err))
		return fmt.Errorf("upsert directions cache entry: %w", err)
	}

	return nil
}

func (r *directionsCacheRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM directions_cache WHERE fetched_at < $1`,
		time.Now().Add(-age))
	if err != nil {
		r.logger.Error("failed to purge directions cache", zap.Error(err))
		return 0, fmt.Errorf("purge directions cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge directions cache: %w", err)
	}

	r.logger.Debug("directions cache purged", zap.Int64("deleted", n))
	return n, nil
}
