package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
)

type routeLedgerRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRouteLedgerRepository создает репозиторий журнала стоимости доставок
func NewRouteLedgerRepository(db *DB, logger *zap.Logger) repository.RouteLedgerRepository {
	return &routeLedgerRepository{
		db:     db,
		logger: logger,
	}
}

// Record сохраняет запись журнала. Заявка учитывается один раз
func (r *routeLedgerRepository) Record(ctx context.Context, entry *domain.RouteCostEntry) (bool, error) {
	query := `
		INSERT INTO route_cost_ledger (
			event_id, supply_request_id, ngo_id, ware_house_id, origin, destination,
			distance_km, duration_minutes, charge, created_at
		)
		VALUES (
			:event_id, :supply_request_id, :ngo_id, :ware_house_id, :origin, :destination,
			:distance_km, :duration_minutes, :charge, :created_at
		)
		ON CONFLICT (supply_request_id) DO NOTHING
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, entry)
	if err != nil {
		r.logger.Error("failed to record route cost",
			zap.Int64("supply_request_id", entry.SupplyRequestID),
			zap.Error(err))
		return false, fmt.Errorf("record route cost: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, fmt.Errorf("record route cost: %w", err)
		}
		r.logger.Debug("route cost already recorded",
			zap.Int64("supply_request_id", entry.SupplyRequestID))
		return false, nil
	}

	if err := rows.Scan(&entry.ID); err != nil {
		return false, fmt.Errorf("record route cost: %w", err)
	}

	return true, nil
}

func (r *routeLedgerRepository) GetBySupplyRequestID(ctx context.Context, supplyRequestID int64) (*domain.RouteCostEntry, error) {
	query := `
		SELECT id, event_id, supply_request_id, ngo_id, ware_house_id, origin, destination,
		       distance_km, duration_minutes, charge, created_at
		FROM route_cost_ledger
		WHERE supply_request_id = $1
	`

	var entry domain.RouteCostEntry
	err := r.db.GetContext(ctx, &entry, query, supplyRequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get route cost entry",
			zap.Int64("supply_request_id", supplyRequestID),
			zap.Error(err))
		return nil, fmt.Errorf("get route cost entry: %w", err)
	}

	return &entry, nil
}

// Summary агрегирует журнал. Пустой журнал дает нулевой отчёт
func (r *routeLedgerRepository) Summary(ctx context.Context, filter domain.RouteCostFilter) (*domain.RouteCostReport, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.NGOID != nil {
		args = append(args, *filter.NGOID)
		conditions = append(conditions, fmt.Sprintf("ngo_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `
		SELECT
			COUNT(*)                              AS requests,
			COALESCE(SUM(distance_km), 0)         AS total_distance_km,
			COALESCE(SUM(duration_minutes), 0)    AS total_minutes,
			COALESCE(SUM(charge), 0)::bigint      AS total_charge,
			COALESCE(AVG(charge), 0)::float8      AS average_charge
		FROM route_cost_ledger
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var report domain.RouteCostReport
	if err := r.db.GetContext(ctx, &report, query, args...); err != nil {
		r.logger.Error("failed to summarize route costs", zap.Error(err))
		return nil, fmt.Errorf("summarize route costs: %w", err)
	}
	report.NGOID = filter.NGOID

	return &report, nil
}
