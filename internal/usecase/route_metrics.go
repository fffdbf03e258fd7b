package usecase

import (
	"math"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
)

// ComputeRoute рассчитывает метрики маршрута по первому участку ответа провайдера.
// Расстояние хранится без округления: charge округляется один раз, в конце
func ComputeRoute(route domain.ProviderRoute, tariffPerKm float64) (domain.Route, error) {
	if len(route.Legs) == 0 {
		return domain.Route{}, invalidLeg("route has no legs")
	}
	leg := route.Legs[0]

	meters, ok := leg.Distance.Float()
	if !ok {
		return domain.Route{}, invalidLeg("distance.value is missing or not a number")
	}
	seconds, ok := leg.Duration.Float()
	if !ok {
		return domain.Route{}, invalidLeg("duration.value is missing or not a number")
	}
	if meters < 0 || seconds < 0 {
		return domain.Route{}, invalidLeg("negative distance or duration")
	}

	distanceKm := meters / 1000

	return domain.Route{
		Start:           leg.StartAddress,
		End:             leg.EndAddress,
		DistanceKm:      distanceKm,
		DurationText:    leg.Duration.Text,
		DurationMinutes: int(math.Round(seconds / 60)),
		Charge:          int64(math.Round(distanceKm * tariffPerKm)),
		Polyline:        route.OverviewPolyline.Points,
	}, nil
}

// ComputeRoutes рассчитывает метрики для всех альтернатив.
// Ошибка в любом маршруте отменяет весь набор
func ComputeRoutes(routes []domain.ProviderRoute, tariffPerKm float64) ([]domain.Route, error) {
	result := make([]domain.Route, 0, len(routes))
	for i, pr := range routes {
		route, err := ComputeRoute(pr, tariffPerKm)
		if err != nil {
			if appErr, ok := errors.As(err); ok {
				details := map[string]interface{}{"route_index": i}
				for k, v := range appErr.Details {
					details[k] = v
				}
				return nil, appErr.WithDetails(details)
			}
			return nil, err
		}
		result = append(result, route)
	}
	return result, nil
}

func invalidLeg(reason string) error {
	return errors.ErrInvalidLegData.WithDetails(map[string]interface{}{
		"reason": reason,
	})
}
