package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/pkg/polyline"
)

// SelectionState - состояние выбора маршрута
type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionDisplayed
)

func (s SelectionState) String() string {
	switch s {
	case SelectionEmpty:
		return "empty"
	case SelectionDisplayed:
		return "displayed"
	default:
		return "unknown"
	}
}

// RouteSelection - набор альтернативных маршрутов, отображаемый на одной карте.
// Принадлежит одному диалогу создания заявки
type RouteSelection struct {
	mu sync.Mutex

	mapProvider repository.MapProvider
	logger      *zap.Logger
	padding     int

	state       SelectionState
	routes      []domain.Route
	decoded     [][]domain.Coordinate // nil для маршрута с битой polyline
	primary     int
	highlighted int
	layers      []domain.LayerHandle
}

func NewRouteSelection(mapProvider repository.MapProvider, logger *zap.Logger, padding int) *RouteSelection {
	return &RouteSelection{
		mapProvider: mapProvider,
		logger:      logger,
		padding:     padding,
		state:       SelectionEmpty,
	}
}

// Load заменяет текущий набор маршрутов, рисует все маршруты и выделяет самый короткий
func (s *RouteSelection) Load(routes []domain.Route) error {
	primary, err := PickDefault(routes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mapReady() {
		s.logger.Warn("Map is not ready, route set is not drawn",
			zap.Int("routes", len(routes)))
		return nil
	}

	s.removeLayers()

	decoded := make([][]domain.Coordinate, len(routes))
	var all []domain.Coordinate
	for i, route := range routes {
		points, err := polyline.Decode(route.Polyline)
		if err != nil {
			s.logger.Warn("Skipping route with malformed polyline",
				zap.Int("route_index", i),
				zap.Error(err))
			continue
		}
		decoded[i] = points
		all = append(all, points...)
	}

	s.routes = append([]domain.Route(nil), routes...)
	s.decoded = decoded
	s.primary = primary
	s.highlighted = primary
	s.state = SelectionDisplayed

	for i, points := range decoded {
		if points == nil {
			continue
		}
		s.layers = append(s.layers, s.mapProvider.DrawPolyline(i, points, domain.LoadStyle(i == primary)))
	}

	// у всех альтернатив общие начало и конец
	s.drawFirstEndpoints()

	if box, ok := domain.BoundsOf(all); ok {
		s.mapProvider.FitBounds(box, s.padding)
	} else {
		s.logger.Warn("No drawable routes in route set", zap.Int("routes", len(routes)))
	}

	s.logger.Debug("Route set loaded",
		zap.Int("routes", len(routes)),
		zap.Int("primary", primary))

	return nil
}

// Highlight выделяет маршрут index. Основной (самый короткий) маршрут не меняется
func (s *RouteSelection) Highlight(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SelectionDisplayed || index < 0 || index >= len(s.routes) {
		return errors.ErrIndexOutOfRange.WithDetails(map[string]interface{}{
			"index":  index,
			"routes": len(s.routes),
		})
	}

	if !s.mapReady() {
		s.logger.Warn("Map is not ready, highlight is not drawn", zap.Int("index", index))
		return nil
	}

	s.removeLayers()
	s.highlighted = index

	for i, points := range s.decoded {
		if points == nil || i == index {
			continue
		}
		s.layers = append(s.layers, s.mapProvider.DrawPolyline(i, points, domain.HighlightStyle(i == s.primary, false)))
	}

	points := s.decoded[index]
	if points == nil {
		s.logger.Warn("Highlighted route has malformed polyline, nothing to fit",
			zap.Int("index", index))
		s.drawFirstEndpoints()
		return nil
	}

	// выделенный маршрут рисуется последним, поверх остальных
	s.layers = append(s.layers, s.mapProvider.DrawPolyline(index, points, domain.HighlightStyle(index == s.primary, true)))
	s.drawEndpoints(index, points)

	if box, ok := domain.BoundsOf(points); ok {
		s.mapProvider.FitBounds(box, s.padding)
	}

	return nil
}

// Clear убирает все маршруты и маркеры с карты
func (s *RouteSelection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLayers()
	s.routes = nil
	s.decoded = nil
	s.primary = 0
	s.highlighted = 0
	s.state = SelectionEmpty
}

func (s *RouteSelection) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Routes возвращает копию текущего набора
func (s *RouteSelection) Routes() []domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Route(nil), s.routes...)
}

// PrimaryIndex - индекс самого короткого маршрута. ok=false в состоянии Empty
func (s *RouteSelection) PrimaryIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primary, s.state == SelectionDisplayed
}

// HighlightedIndex - индекс выделенного маршрута. ok=false в состоянии Empty
func (s *RouteSelection) HighlightedIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlighted, s.state == SelectionDisplayed
}

// Selected возвращает выделенный маршрут
func (s *RouteSelection) Selected() (domain.Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SelectionDisplayed {
		return domain.Route{}, false
	}
	return s.routes[s.highlighted], true
}

func (s *RouteSelection) mapReady() bool {
	select {
	case <-s.mapProvider.Ready():
		return true
	default:
		return false
	}
}

func (s *RouteSelection) drawEndpoints(routeIndex int, points []domain.Coordinate) {
	s.layers = append(s.layers,
		s.mapProvider.DrawMarker(routeIndex, points[0], domain.EndpointMarkerStyle(true)),
		s.mapProvider.DrawMarker(routeIndex, points[len(points)-1], domain.EndpointMarkerStyle(false)),
	)
}

// drawFirstEndpoints рисует начало и конец по первому маршруту с корректной polyline
func (s *RouteSelection) drawFirstEndpoints() {
	for i, points := range s.decoded {
		if len(points) > 0 {
			s.drawEndpoints(i, points)
			return
		}
	}
}

func (s *RouteSelection) removeLayers() {
	for _, handle := range s.layers {
		s.mapProvider.RemoveOverlay(handle)
	}
	s.layers = nil
}
