package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultShutdownTimeout - максимальное время ожидания завершения воркеров
	DefaultShutdownTimeout = 30 * time.Second
)

// Worker - фоновый процесс сервиса (журнал стоимости маршрутов, уборка диалогов).
// Start блокирует до остановки, Stop должен быть идемпотентным
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

// WorkerManager управляет несколькими воркерами
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	shutdownTimeout time.Duration
	wg              sync.WaitGroup
	mu              sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return NewWorkerManagerWithTimeout(logger, DefaultShutdownTimeout)
}

// NewWorkerManagerWithTimeout создает WorkerManager с заданным временем ожидания остановки
func NewWorkerManagerWithTimeout(logger *zap.Logger, shutdownTimeout time.Duration) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все зарегистрированные воркеры
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go m.run(ctx, w)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()
	log := m.logger.With(zap.String("name", w.Name()))
	defer func() {
		if r := recover(); r != nil {
			log.Error("Worker panicked", zap.Any("panic", r))
		}
	}()

	started := time.Now()
	log.Info("Starting worker")
	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error("Worker failed", zap.Error(err), zap.Duration("uptime", time.Since(started)))
		return
	}
	log.Info("Worker exited", zap.Duration("uptime", time.Since(started)))
}

// Stop останавливает все воркеры и ждет их завершения не дольше shutdownTimeout.
// Ошибки Stop отдельных воркеров объединяются в одну
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	var errs []error
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", w.Name(), err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(m.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
	case <-timer.C:
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", m.shutdownTimeout))
		errs = append(errs, fmt.Errorf("workers shutdown timed out after %v", m.shutdownTimeout))
	}

	return errors.Join(errs...)
}
