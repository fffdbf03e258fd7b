package repository

import (
	"context"

	"github.com/supply-route-service/internal/domain"
)

// DirectionsRepository - провайдер маршрутов (Google Directions API)
type DirectionsRepository interface {
	// GetRoutes возвращает альтернативные маршруты между двумя адресами
	GetRoutes(ctx context.Context, origin, destination string) ([]domain.ProviderRoute, error)
}

// PlacesRepository - провайдер подсказок адресов (Google Places Autocomplete)
type PlacesRepository interface {
	Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error)
}
