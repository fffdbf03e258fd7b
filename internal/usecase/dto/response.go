package dto

import (
	"time"

	"github.com/supply-route-service/internal/domain"
)

// RouteResponse - маршрут в формате клиента: расстояния строками с 2 знаками
type RouteResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DistanceKm      string `json:"distance_km"`
	DistanceMiles   string `json:"distance_miles"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"duration_minutes"`
	Charge          int64  `json:"charge"`
	Polyline        string `json:"polyline"`
}

func NewRouteResponse(r domain.Route) RouteResponse {
	return RouteResponse{
		Start:           r.Start,
		End:             r.End,
		DistanceKm:      r.DistanceKmText(),
		DistanceMiles:   r.DistanceMilesText(),
		Duration:        r.DurationText,
		DurationMinutes: r.DurationMinutes,
		Charge:          r.Charge,
		Polyline:        r.Polyline,
	}
}

func NewRouteResponses(routes []domain.Route) []RouteResponse {
	result := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		result = append(result, NewRouteResponse(r))
	}
	return result
}

// CalculateRouteResponse - ответ GET /calculate-route
type CalculateRouteResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// LegacyErrorResponse - ошибка GET /calculate-route: {error, detail}
type LegacyErrorResponse struct {
	Error  string      `json:"error"`
	Detail interface{} `json:"detail,omitempty"`
}

// DialogResponse - состояние диалога создания заявки
type DialogResponse struct {
	ID               string                 `json:"id"`
	NGOID            int64                  `json:"ngo_id"`
	WarehouseID      *int64                 `json:"ware_house_id,omitempty"`
	State            string                 `json:"state"`
	Items            []domain.ItemSelection `json:"items"`
	Start            string                 `json:"start,omitempty"`
	End              string                 `json:"end,omitempty"`
	Routes           []RouteResponse        `json:"routes"`
	PrimaryIndex     *int                   `json:"primary_index,omitempty"`
	HighlightedIndex *int                   `json:"highlighted_index,omitempty"`
	Map              domain.MapSnapshot     `json:"map"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// SubmitResponse - результат отправки заявки
type SubmitResponse struct {
	SupplyRequest *domain.SupplyRequest        `json:"supply_request"`
	Payload       *domain.SupplyRequestPayload `json:"payload"`
}

// DeliveryCostResponse - стоимость доставки по заявке
type DeliveryCostResponse struct {
	SupplyRequestID int64 `json:"supply_request_id"`
	DeliveryCost    int64 `json:"delivery_cost"`
}
