package janitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/worker"
)

// IdleDialogCloser - закрытие неактивных диалогов
type IdleDialogCloser interface {
	CloseIdle(idle time.Duration) int
}

// CachePurger - удаление устаревших записей кеша маршрутов
type CachePurger interface {
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// JanitorWorker периодически закрывает брошенные диалоги и чистит кеш маршрутов в Postgres
type JanitorWorker struct {
	*worker.BaseWorker
	dialogs     IdleDialogCloser
	cache       CachePurger
	interval    time.Duration
	dialogIdle  time.Duration
	cacheMaxAge time.Duration
}

var _ worker.Worker = (*JanitorWorker)(nil)

// NewJanitorWorker создает JanitorWorker. cache может быть nil
func NewJanitorWorker(
	dialogs IdleDialogCloser,
	cache CachePurger,
	interval time.Duration,
	dialogIdle time.Duration,
	cacheMaxAge time.Duration,
	logger *zap.Logger,
) *JanitorWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &JanitorWorker{
		BaseWorker:  worker.NewBaseWorker("janitor", "", logger),
		dialogs:     dialogs,
		cache:       cache,
		interval:    interval,
		dialogIdle:  dialogIdle,
		cacheMaxAge: cacheMaxAge,
	}
}

// Start запускает воркер
func (w *JanitorWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting JanitorWorker",
		zap.Duration("interval", w.interval),
		zap.Duration("dialog_idle", w.dialogIdle),
		zap.Duration("cache_max_age", w.cacheMaxAge))

	for {
		if !w.Wait(ctx, w.interval) {
			if ctx.Err() != nil {
				logger.Info("Context cancelled")
				return ctx.Err()
			}
			logger.Info("Worker stopped")
			return nil
		}
		w.RunOnce(ctx)
	}
}

// RunOnce выполняет один проход очистки
func (w *JanitorWorker) RunOnce(ctx context.Context) {
	logger := w.Logger()

	if w.dialogs != nil && w.dialogIdle > 0 {
		if closed := w.dialogs.CloseIdle(w.dialogIdle); closed > 0 {
			logger.Info("Closed idle dialogs", zap.Int("count", closed))
		}
	}

	if w.cache != nil && w.cacheMaxAge > 0 {
		deleted, err := w.cache.DeleteOlderThan(ctx, w.cacheMaxAge)
		if err != nil {
			logger.Error("Failed to purge directions cache", zap.Error(err))
			return
		}
		if deleted > 0 {
			logger.Info("Purged directions cache", zap.Int64("deleted", deleted))
		}
	}
}
