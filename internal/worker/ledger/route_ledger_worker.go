package ledger

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза при ошибке чтения
	retryBackoff    = 200 * time.Millisecond

	// DefaultClaimIdle - простой, после которого неподтверждённое сообщение забирается повторно
	DefaultClaimIdle = 30 * time.Second
)

// RouteCostRecorder - запись события в журнал стоимости
type RouteCostRecorder interface {
	Record(ctx context.Context, event *domain.SupplyRequestCreatedEvent) error
}

// RouteLedgerWorker переносит события о созданных заявках в журнал стоимости доставок
type RouteLedgerWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	recorder     RouteCostRecorder
	consumerName string
	batchSize    int
	maxRetries   int
	claimIdle    time.Duration
	lastClaim    time.Time
}

var _ worker.Worker = (*RouteLedgerWorker)(nil)

// NewRouteLedgerWorker создает новый RouteLedgerWorker
func NewRouteLedgerWorker(
	streamRepo repository.StreamRepository,
	recorder RouteCostRecorder,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	claimIdle time.Duration,
	logger *zap.Logger,
) *RouteLedgerWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = 20
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if claimIdle <= 0 {
		claimIdle = DefaultClaimIdle
	}

	return &RouteLedgerWorker{
		BaseWorker:   worker.NewBaseWorker("route-ledger", consumerGroup, logger),
		streamRepo:   streamRepo,
		recorder:     recorder,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		claimIdle:    claimIdle,
	}
}

// Start запускает воркер
func (w *RouteLedgerWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteLedgerWorker",
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize),
		zap.Duration("claim_idle", w.claimIdle))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSupplyRequestCreated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			if time.Since(w.lastClaim) >= w.claimIdle {
				w.reclaimPending(ctx)
			}

			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Wait(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Wait(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и записывает пачку событий. Возвращает количество прочитанных сообщений
func (w *RouteLedgerWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamSupplyRequestCreated,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))
	acked := w.handle(ctx, messages)

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", acked))

	return len(messages), nil
}

// reclaimPending повторно обрабатывает сообщения, оставшиеся без ACK дольше claimIdle
// (сбой записи у этого или у упавшего consumer'а)
func (w *RouteLedgerWorker) reclaimPending(ctx context.Context) {
	logger := w.Logger()
	w.lastClaim = time.Now()

	messages, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamSupplyRequestCreated,
		w.ConsumerGroup(),
		w.consumerName,
		w.claimIdle,
		w.batchSize,
	)
	if err != nil {
		logger.Error("Failed to claim pending messages", zap.Error(err))
		return
	}
	if len(messages) == 0 {
		return
	}

	acked := w.handle(ctx, messages)
	logger.Info("Pending messages reprocessed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", acked))
}

// handle записывает события и подтверждает обработанные. Возвращает количество подтверждённых
func (w *RouteLedgerWorker) handle(ctx context.Context, messages []domain.StreamMessage) int {
	logger := w.Logger()

	ackIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение подтверждаем, чтобы не застревало
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.record(ctx, event); err != nil {
			if stderrors.Is(err, errors.ErrValidation) {
				logger.Warn("Invalid ledger event, skipping",
					zap.String("message_id", msg.ID),
					zap.Int64("supply_request_id", event.SupplyRequestID))
				ackIDs = append(ackIDs, msg.ID)
				continue
			}
			// без ACK сообщение остается в pending списке и вернётся через reclaimPending
			logger.Error("Failed to record route cost",
				zap.String("message_id", msg.ID),
				zap.Int64("supply_request_id", event.SupplyRequestID),
				zap.Error(err))
			continue
		}
		ackIDs = append(ackIDs, msg.ID)
	}

	if len(ackIDs) == 0 {
		return 0
	}
	if err := w.streamRepo.AckMessages(ctx, domain.StreamSupplyRequestCreated, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		return 0
	}
	return len(ackIDs)
}

func (w *RouteLedgerWorker) record(ctx context.Context, event *domain.SupplyRequestCreatedEvent) error {
	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 && !w.Wait(ctx, retryBackoff*time.Duration(attempt)) {
			return err
		}
		err = w.recorder.Record(ctx, event)
		if err == nil || stderrors.Is(err, errors.ErrValidation) {
			return err
		}
		w.Logger().Warn("Record attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int64("supply_request_id", event.SupplyRequestID),
			zap.Error(err))
	}
	return err
}

// parseMessage разбирает JSON из поля data
func parseMessage(msg domain.StreamMessage) (*domain.SupplyRequestCreatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.SupplyRequestCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
