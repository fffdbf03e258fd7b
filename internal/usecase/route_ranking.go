package usecase

import (
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
)

// PickDefault возвращает индекс самого короткого маршрута.
// При равных расстояниях выигрывает первый
func PickDefault(routes []domain.Route) (int, error) {
	if len(routes) == 0 {
		return 0, errors.ErrEmptyRouteSet
	}

	best := 0
	for i := 1; i < len(routes); i++ {
		if routes[i].DistanceKm < routes[best].DistanceKm {
			best = i
		}
	}
	return best, nil
}
