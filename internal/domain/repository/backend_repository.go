package repository

import (
	"context"

	"github.com/supply-route-service/internal/domain"
)

// BackendRepository - REST backend складов и заявок
type BackendRepository interface {
	ListWarehouseItems(ctx context.Context) ([]domain.WarehouseItem, error)
	ListSupplyRequests(ctx context.Context) ([]domain.SupplyRequest, error)
	GetSupplyRequest(ctx context.Context, id int64) (*domain.SupplyRequest, error)

	// CreateSupplyRequest создает заявку и возвращает её в представлении backend
	CreateSupplyRequest(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error)
}
