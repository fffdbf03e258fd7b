package repository

import (
	"context"

	"github.com/supply-route-service/internal/domain"
)

// RouteLedgerRepository - журнал стоимости доставок
type RouteLedgerRepository interface {
	// Record сохраняет запись. Повторная запись по той же заявке игнорируется, inserted=false
	Record(ctx context.Context, entry *domain.RouteCostEntry) (inserted bool, err error)

	// GetBySupplyRequestID возвращает запись по заявке. Отсутствие - nil, nil
	GetBySupplyRequestID(ctx context.Context, supplyRequestID int64) (*domain.RouteCostEntry, error)

	// Summary агрегирует журнал по фильтру
	Summary(ctx context.Context, filter domain.RouteCostFilter) (*domain.RouteCostReport, error)
}
