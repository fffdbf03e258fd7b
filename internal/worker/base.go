package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BaseWorker - имя, логгер и сигнал остановки, общие для воркеров сервиса
type BaseWorker struct {
	name          string
	consumerGroup string
	logger        *zap.Logger
	done          chan struct{}
	stopOnce      sync.Once
}

// NewBaseWorker создает BaseWorker. consumerGroup пустой для воркеров, не читающих стримы
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := []zap.Field{zap.String("worker", name)}
	if consumerGroup != "" {
		fields = append(fields, zap.String("consumer_group", consumerGroup))
	}
	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		logger:        logger.With(fields...),
		done:          make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop закрывает канал остановки. Повторные вызовы ничего не делают
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.done)
	})
	return nil
}

// StopChan закрывается после Stop
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.done
}

// Wait ждёт d. Возвращает false, если за это время воркер остановили или отменили ctx
func (w *BaseWorker) Wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-w.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
