package repository

import "github.com/supply-route-service/internal/domain"

// MapProvider - карта, на которой рисуются маршруты.
// Пока Ready не закрыт, карта не готова к отрисовке
type MapProvider interface {
	Ready() <-chan struct{}
	DrawPolyline(routeIndex int, points []domain.Coordinate, style domain.PolylineStyle) domain.LayerHandle
	DrawMarker(routeIndex int, position domain.Coordinate, style domain.MarkerStyle) domain.LayerHandle
	RemoveOverlay(handle domain.LayerHandle)
	FitBounds(bounds domain.BoundingBox, padding int)
	InvalidateSize()
}
