package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
)

// SupplyRequestUseCase - склад и заявки НКО поверх backend API
type SupplyRequestUseCase struct {
	backend    repository.BackendRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewSupplyRequestUseCase(
	backend repository.BackendRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SupplyRequestUseCase {
	return &SupplyRequestUseCase{
		backend:    backend,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// ListStock - позиции в наличии (quantity > 0), опционально по одному складу
func (uc *SupplyRequestUseCase) ListStock(ctx context.Context, warehouseID *int64) ([]domain.WarehouseItem, error) {
	items, err := uc.backend.ListWarehouseItems(ctx)
	if err != nil {
		uc.logger.Error("Failed to list warehouse items", zap.Error(err))
		return nil, err
	}

	result := make([]domain.WarehouseItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if warehouseID != nil && item.WarehouseID != *warehouseID {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// FindStockItem ищет позицию склада для добавления в черновик
func (uc *SupplyRequestUseCase) FindStockItem(ctx context.Context, warehouseID, itemID int64) (*domain.WarehouseItem, error) {
	items, err := uc.backend.ListWarehouseItems(ctx)
	if err != nil {
		uc.logger.Error("Failed to list warehouse items", zap.Error(err))
		return nil, err
	}

	for i := range items {
		if items[i].WarehouseID == warehouseID && items[i].ItemID == itemID {
			if items[i].Quantity <= 0 {
				return nil, errors.ErrValidation.WithMessage("Item is out of stock").WithDetails(map[string]interface{}{
					"item_id":       itemID,
					"ware_house_id": warehouseID,
				})
			}
			return &items[i], nil
		}
	}

	return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{
		"item_id":       itemID,
		"ware_house_id": warehouseID,
	})
}

// ListByNGO - заявки одной НКО
func (uc *SupplyRequestUseCase) ListByNGO(ctx context.Context, ngoID int64) ([]domain.SupplyRequest, error) {
	requests, err := uc.backend.ListSupplyRequests(ctx)
	if err != nil {
		uc.logger.Error("Failed to list supply requests", zap.Error(err))
		return nil, err
	}

	result := make([]domain.SupplyRequest, 0)
	for _, r := range requests {
		if r.NGOID == ngoID {
			result = append(result, r)
		}
	}
	return result, nil
}

// DeliveryCost - стоимость доставки по заявке (charge первого маршрута, иначе 0)
func (uc *SupplyRequestUseCase) DeliveryCost(ctx context.Context, id int64) (int64, error) {
	request, err := uc.backend.GetSupplyRequest(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get supply request", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return request.DeliveryCost(), nil
}

// Submit отправляет заявку в backend и публикует событие для журнала стоимости.
// Ошибка публикации не отменяет принятую заявку
func (uc *SupplyRequestUseCase) Submit(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error) {
	created, err := uc.backend.CreateSupplyRequest(ctx, payload)
	if err != nil {
		uc.logger.Error("Failed to create supply request",
			zap.Int64("ngo_id", payload.NGOID),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Supply request created",
		zap.Int64("id", created.ID),
		zap.Int64("ngo_id", payload.NGOID),
		zap.Int64("charge", payload.Charge))

	uc.publishCreated(ctx, created, payload)
	return created, nil
}

func (uc *SupplyRequestUseCase) publishCreated(ctx context.Context, created *domain.SupplyRequest, payload *domain.SupplyRequestPayload) {
	if uc.streamRepo == nil {
		return
	}

	distanceKm, err := strconv.ParseFloat(payload.DistanceKm, 64)
	if err != nil {
		uc.logger.Warn("Cannot parse distance for ledger event",
			zap.String("distance_km", payload.DistanceKm),
			zap.Error(err))
		return
	}

	event := &domain.SupplyRequestCreatedEvent{
		EventID:         uuid.New(),
		SupplyRequestID: created.ID,
		NGOID:           payload.NGOID,
		WarehouseID:     payload.WarehouseID,
		Start:           payload.Start,
		End:             payload.End,
		DistanceKm:      distanceKm,
		DurationMinutes: payload.DurationMinutes,
		Charge:          payload.Charge,
		CreatedAt:       time.Now().UTC(),
	}
	if !event.IsValid() {
		uc.logger.Warn("Skipping ledger event for incomplete backend response",
			zap.Int64("supply_request_id", created.ID))
		return
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSupplyRequestCreated, event); err != nil {
		uc.logger.Error("Failed to publish supply request event",
			zap.Int64("supply_request_id", created.ID),
			zap.Error(err))
	}
}
