package usecase

import (
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
)

// AssembleSupplyRequest собирает заявку из выбранных позиций и выделенного маршрута.
// Склад заявки берется из первой позиции
func AssembleSupplyRequest(
	ngoID int64,
	items []domain.ItemSelection,
	routes []domain.Route,
	highlighted int,
) (*domain.SupplyRequestPayload, error) {
	if len(items) == 0 {
		return nil, errors.ErrIncompleteSelection.WithDetails(map[string]interface{}{
			"reason": "no items selected",
		})
	}
	if len(routes) == 0 {
		return nil, errors.ErrIncompleteSelection.WithDetails(map[string]interface{}{
			"reason": "no route calculated",
		})
	}
	if highlighted < 0 || highlighted >= len(routes) {
		return nil, errors.ErrIncompleteSelection.WithDetails(map[string]interface{}{
			"reason": "no route selected",
			"index":  highlighted,
		})
	}

	warehouseID := items[0].WarehouseID
	requested := make([]domain.RequestedItem, 0, len(items))
	for _, item := range items {
		if item.WarehouseID != warehouseID {
			return nil, errors.ErrWarehouseMismatch.WithDetails(map[string]interface{}{
				"warehouse_id":      warehouseID,
				"item_id":           item.ItemID,
				"item_warehouse_id": item.WarehouseID,
			})
		}
		requested = append(requested, domain.RequestedItem{
			WarehouseID: item.WarehouseID,
			ItemID:      item.ItemID,
			Quantity:    item.Quantity,
		})
	}

	route := routes[highlighted]
	return &domain.SupplyRequestPayload{
		NGOID:           ngoID,
		WarehouseID:     warehouseID,
		Items:           requested,
		Start:           route.Start,
		End:             route.End,
		DistanceKm:      route.DistanceKmText(),
		DistanceMiles:   route.DistanceMilesText(),
		Duration:        route.DurationText,
		DurationMinutes: route.DurationMinutes,
		Charge:          route.Charge,
		Polyline:        route.Polyline,
	}, nil
}
