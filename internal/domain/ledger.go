package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouteCostEntry - запись журнала стоимости доставки
type RouteCostEntry struct {
	ID              int64     `db:"id" json:"id"`
	EventID         uuid.UUID `db:"event_id" json:"event_id"`
	SupplyRequestID int64     `db:"supply_request_id" json:"supply_request_id"`
	NGOID           int64     `db:"ngo_id" json:"ngo_id"`
	WarehouseID     int64     `db:"ware_house_id" json:"ware_house_id"`
	Origin          string    `db:"origin" json:"start"`
	Destination     string    `db:"destination" json:"end"`
	DistanceKm      float64   `db:"distance_km" json:"distance_km"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Charge          int64     `db:"charge" json:"charge"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// NewRouteCostEntry строит запись журнала из события
func NewRouteCostEntry(event *SupplyRequestCreatedEvent) *RouteCostEntry {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return &RouteCostEntry{
		EventID:         event.EventID,
		SupplyRequestID: event.SupplyRequestID,
		NGOID:           event.NGOID,
		WarehouseID:     event.WarehouseID,
		Origin:          event.Start,
		Destination:     event.End,
		DistanceKm:      event.DistanceKm,
		DurationMinutes: event.DurationMinutes,
		Charge:          event.Charge,
		CreatedAt:       createdAt,
	}
}

// RouteCostFilter - фильтр отчёта по журналу
type RouteCostFilter struct {
	NGOID *int64     `query:"ngo_id"`
	From  *time.Time `query:"from"`
	To    *time.Time `query:"to"`
}

// RouteCostReport - агрегированный отчёт по стоимости доставок
type RouteCostReport struct {
	NGOID           *int64  `db:"-" json:"ngo_id,omitempty"`
	Requests        int64   `db:"requests" json:"requests"`
	TotalDistanceKm float64 `db:"total_distance_km" json:"total_distance_km"`
	TotalMinutes    int64   `db:"total_minutes" json:"total_minutes"`
	TotalCharge     int64   `db:"total_charge" json:"total_charge"`
	AverageCharge   float64 `db:"average_charge" json:"average_charge"`
}

// DirectionsCacheEntry - сохранённый ответ провайдера для пары адресов
type DirectionsCacheEntry struct {
	Origin      string    `db:"origin"`
	Destination string    `db:"destination"`
	Payload     []byte    `db:"payload"`
	FetchedAt   time.Time `db:"fetched_at"`
}
