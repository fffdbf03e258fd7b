package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/pkg/utils"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/usecase/dto"
)

// SupplyRequestHandler - склад и заявки НКО
type SupplyRequestHandler struct {
	supplyUC *usecase.SupplyRequestUseCase
	logger   *zap.Logger
}

func NewSupplyRequestHandler(supplyUC *usecase.SupplyRequestUseCase, logger *zap.Logger) *SupplyRequestHandler {
	return &SupplyRequestHandler{
		supplyUC: supplyUC,
		logger:   logger,
	}
}

// ListStock godoc
// @Summary Позиции склада в наличии
// @Tags Stock
// @Produce json
// @Param warehouse_id query int false "Фильтр по складу"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.WarehouseItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stock [get]
func (h *SupplyRequestHandler) ListStock(c *fiber.Ctx) error {
	var warehouseID *int64
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := parseID(raw, "warehouse_id")
		if err != nil {
			return utils.SendError(c, err)
		}
		warehouseID = &id
	}

	items, err := h.supplyUC.ListStock(c.UserContext(), warehouseID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, items)
}

// ListByNGO godoc
// @Summary Заявки НКО
// @Tags SupplyRequests
// @Produce json
// @Param ngo_id query int true "ID НКО"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SupplyRequest}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/supply-requests [get]
func (h *SupplyRequestHandler) ListByNGO(c *fiber.Ctx) error {
	ngoID, err := parseID(c.Query("ngo_id"), "ngo_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	requests, err := h.supplyUC.ListByNGO(c.UserContext(), ngoID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, requests)
}

// DeliveryCost godoc
// @Summary Стоимость доставки по заявке
// @Description Charge первого маршрута заявки, 0 если маршрута нет
// @Tags SupplyRequests
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeliveryCostResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/supply-requests/{id}/delivery-cost [get]
func (h *SupplyRequestHandler) DeliveryCost(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	cost, err := h.supplyUC.DeliveryCost(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DeliveryCostResponse{
		SupplyRequestID: id,
		DeliveryCost:    cost,
	}, nil)
}
