package domain

import (
	"time"

	apperrors "github.com/supply-route-service/internal/pkg/errors"
)

// ItemSelection - выбранная позиция склада в черновике заявки
type ItemSelection struct {
	ItemID      int64 `json:"item_id" validate:"required,gt=0"`
	Quantity    int   `json:"quantity"`
	MaxQuantity int   `json:"max_quantity" validate:"required,gt=0"`
	WarehouseID int64 `json:"ware_house_id" validate:"required,gt=0"`
}

// SupplyRequestDraft - заявка НКО в процессе заполнения.
// Все позиции принадлежат одному складу
type SupplyRequestDraft struct {
	NGOID int64           `json:"ngo_id"`
	Items []ItemSelection `json:"items"`
}

// NewSupplyRequestDraft создает пустой черновик
func NewSupplyRequestDraft(ngoID int64) *SupplyRequestDraft {
	return &SupplyRequestDraft{
		NGOID: ngoID,
		Items: make([]ItemSelection, 0),
	}
}

// WarehouseID - склад черновика (склад первой позиции). ok=false для пустого черновика
func (d *SupplyRequestDraft) WarehouseID() (int64, bool) {
	if len(d.Items) == 0 {
		return 0, false
	}
	return d.Items[0].WarehouseID, true
}

// AddItem добавляет позицию. Повторное добавление той же позиции заменяет её
func (d *SupplyRequestDraft) AddItem(item ItemSelection) error {
	if warehouseID, ok := d.WarehouseID(); ok && warehouseID != item.WarehouseID {
		return apperrors.ErrWarehouseMismatch.WithDetails(map[string]interface{}{
			"warehouse_id":      warehouseID,
			"item_warehouse_id": item.WarehouseID,
		})
	}

	item.Quantity = clampQuantity(item.Quantity, item.MaxQuantity)

	for i := range d.Items {
		if d.Items[i].ItemID == item.ItemID {
			d.Items[i] = item
			return nil
		}
	}
	d.Items = append(d.Items, item)
	return nil
}

// RemoveItem удаляет позицию. Возвращает false, если позиции не было
func (d *SupplyRequestDraft) RemoveItem(itemID int64) bool {
	for i := range d.Items {
		if d.Items[i].ItemID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity меняет количество в пределах [1, max_quantity]
func (d *SupplyRequestDraft) SetQuantity(itemID int64, quantity int) bool {
	for i := range d.Items {
		if d.Items[i].ItemID == itemID {
			d.Items[i].Quantity = clampQuantity(quantity, d.Items[i].MaxQuantity)
			return true
		}
	}
	return false
}

func clampQuantity(quantity, max int) int {
	if max > 0 && quantity > max {
		quantity = max
	}
	if quantity < 1 {
		quantity = 1
	}
	return quantity
}

// RequestedItem - позиция в payload заявки
type RequestedItem struct {
	WarehouseID int64 `json:"ware_house_id"`
	ItemID      int64 `json:"item_id"`
	Quantity    int   `json:"quantity"`
}

// SupplyRequestPayload - заявка, отправляемая в backend: позиции + метрики выбранного маршрута
type SupplyRequestPayload struct {
	NGOID           int64           `json:"ngo_id"`
	WarehouseID     int64           `json:"ware_house_id"`
	Items           []RequestedItem `json:"items"`
	Start           string          `json:"start"`
	End             string          `json:"end"`
	DistanceKm      string          `json:"distance_km"`
	DistanceMiles   string          `json:"distance_miles"`
	Duration        string          `json:"duration"`
	DurationMinutes int             `json:"duration_minutes"`
	Charge          int64           `json:"charge"`
	Polyline        string          `json:"polyline"`
}

// RouteInfo - метрики маршрута, сохранённые backend'ом вместе с заявкой
type RouteInfo struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DistanceKm      string `json:"distance_km"`
	DistanceMiles   string `json:"distance_miles"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"duration_minutes"`
	Charge          int64  `json:"charge"`
	Polyline        string `json:"polyline,omitempty"`
}

// SupplyRequestItem - позиция сохранённой заявки
type SupplyRequestItem struct {
	ID        int64      `json:"id"`
	ItemID    int64      `json:"item_id"`
	Quantity  int        `json:"quantity"`
	Item      *ItemInfo  `json:"item,omitempty"`
	Warehouse *Warehouse `json:"ware_house,omitempty"`
}

// SupplyRequest - заявка, прочитанная из backend
type SupplyRequest struct {
	ID          int64               `json:"id"`
	NGOID       int64               `json:"ngo_id"`
	WarehouseID int64               `json:"ware_house_id"`
	RequestDate string              `json:"request_date,omitempty"`
	Status      string              `json:"status"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
	Items       []SupplyRequestItem `json:"supply_request_items,omitempty"`
	RouteInfos  []RouteInfo         `json:"route_infos"`
}

// DeliveryCost - стоимость доставки по заявке: charge первого маршрута или 0
func (r *SupplyRequest) DeliveryCost() int64 {
	if len(r.RouteInfos) == 0 {
		return 0
	}
	return r.RouteInfos[0].Charge
}

// ItemInfo - справочная информация о товаре
type ItemInfo struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Warehouse - склад
type Warehouse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseItem - остаток товара на складе
type WarehouseItem struct {
	ID          int64      `json:"id"`
	WarehouseID int64      `json:"ware_house_id"`
	ItemID      int64      `json:"item_id"`
	Quantity    int        `json:"quantity"`
	Item        *ItemInfo  `json:"item,omitempty"`
	Warehouse   *Warehouse `json:"ware_house,omitempty"`
}
