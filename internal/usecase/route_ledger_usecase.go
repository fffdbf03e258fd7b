package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
)

// RouteLedgerUseCase - журнал стоимости доставок и отчёты по нему
type RouteLedgerUseCase struct {
	ledgerRepo repository.RouteLedgerRepository
	logger     *zap.Logger
}

func NewRouteLedgerUseCase(ledgerRepo repository.RouteLedgerRepository, logger *zap.Logger) *RouteLedgerUseCase {
	return &RouteLedgerUseCase{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Record записывает событие в журнал. Повтор по той же заявке не ошибка
func (uc *RouteLedgerUseCase) Record(ctx context.Context, event *domain.SupplyRequestCreatedEvent) error {
	if !event.IsValid() {
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"reason":            "incomplete supply request event",
			"supply_request_id": event.SupplyRequestID,
		})
	}

	inserted, err := uc.ledgerRepo.Record(ctx, domain.NewRouteCostEntry(event))
	if err != nil {
		return fmt.Errorf("record route cost for request %d: %w", event.SupplyRequestID, err)
	}

	if inserted {
		uc.logger.Info("Route cost recorded",
			zap.Int64("supply_request_id", event.SupplyRequestID),
			zap.Int64("charge", event.Charge))
	} else {
		uc.logger.Debug("Route cost already recorded",
			zap.Int64("supply_request_id", event.SupplyRequestID))
	}
	return nil
}

// Report агрегирует журнал по фильтру
func (uc *RouteLedgerUseCase) Report(ctx context.Context, filter domain.RouteCostFilter) (*domain.RouteCostReport, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"reason": "from must be before to",
		})
	}

	report, err := uc.ledgerRepo.Summary(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to build route cost report", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return report, nil
}
