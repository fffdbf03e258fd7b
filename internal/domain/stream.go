package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamSupplyRequestCreated = "stream:supply-request:created"
)

// SupplyRequestCreatedEvent - событие о принятой backend'ом заявке с метриками выбранного маршрута
type SupplyRequestCreatedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	SupplyRequestID int64     `json:"supply_request_id"`
	NGOID           int64     `json:"ngo_id"`
	WarehouseID     int64     `json:"ware_house_id"`
	Start           string    `json:"start"`
	End             string    `json:"end"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	Charge          int64     `json:"charge"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsValid проверяет минимальный набор полей, необходимых для записи в журнал
func (e *SupplyRequestCreatedEvent) IsValid() bool {
	return e.EventID != uuid.Nil &&
		e.SupplyRequestID > 0 &&
		e.NGOID > 0 &&
		e.DistanceKm >= 0 &&
		e.Charge >= 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
