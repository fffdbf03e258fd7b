// Package mapview хранит состояние карты диалога на стороне сервера.
// Front end забирает снимок сцены и рисует его своими средствами
package mapview

import (
	"fmt"
	"sort"
	"sync"

	"github.com/supply-route-service/internal/domain"
)

type Scene struct {
	mu sync.RWMutex

	ready     chan struct{}
	readyOnce sync.Once

	seq         int
	layers      map[domain.LayerHandle]domain.MapLayer
	order       map[domain.LayerHandle]int
	viewport    *domain.MapViewport
	invalidated int
}

func NewScene() *Scene {
	return &Scene{
		ready:  make(chan struct{}),
		layers: make(map[domain.LayerHandle]domain.MapLayer),
		order:  make(map[domain.LayerHandle]int),
	}
}

// Ready закрывается, когда клиент сообщил о готовности карты
func (s *Scene) Ready() <-chan struct{} {
	return s.ready
}

// MarkReady переводит сцену в состояние готовности. Повторный вызов ничего не делает
func (s *Scene) MarkReady() {
	s.readyOnce.Do(func() {
		close(s.ready)
	})
}

func (s *Scene) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

func (s *Scene) DrawPolyline(routeIndex int, points []domain.Coordinate, style domain.PolylineStyle) domain.LayerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := s.nextHandle(domain.LayerPolyline)
	st := style
	s.layers[handle] = domain.MapLayer{
		Handle:     handle,
		Kind:       domain.LayerPolyline,
		RouteIndex: routeIndex,
		Points:     append([]domain.Coordinate(nil), points...),
		Style:      &st,
	}
	return handle
}

func (s *Scene) DrawMarker(routeIndex int, position domain.Coordinate, style domain.MarkerStyle) domain.LayerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := s.nextHandle(domain.LayerMarker)
	pos := position
	st := style
	s.layers[handle] = domain.MapLayer{
		Handle:      handle,
		Kind:        domain.LayerMarker,
		RouteIndex:  routeIndex,
		Position:    &pos,
		MarkerStyle: &st,
	}
	return handle
}

func (s *Scene) RemoveOverlay(handle domain.LayerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.layers, handle)
	delete(s.order, handle)
}

func (s *Scene) FitBounds(bounds domain.BoundingBox, padding int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = &domain.MapViewport{Bounds: bounds, Padding: padding}
}

// InvalidateSize отмечает, что клиент должен пересчитать размер карты
func (s *Scene) InvalidateSize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invalidated++
}

// Snapshot возвращает копию сцены в порядке отрисовки
func (s *Scene) Snapshot() domain.MapSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layers := make([]domain.MapLayer, 0, len(s.layers))
	for _, layer := range s.layers {
		layers = append(layers, layer)
	}
	sort.Slice(layers, func(i, j int) bool {
		return s.order[layers[i].Handle] < s.order[layers[j].Handle]
	})

	snapshot := domain.MapSnapshot{
		Ready:       s.IsReady(),
		Layers:      layers,
		SizeVersion: s.invalidated,
	}
	if s.viewport != nil {
		vp := *s.viewport
		snapshot.Viewport = &vp
	}
	return snapshot
}

func (s *Scene) nextHandle(kind domain.LayerKind) domain.LayerHandle {
	s.seq++
	handle := domain.LayerHandle(fmt.Sprintf("%s-%d", kind, s.seq))
	s.order[handle] = s.seq
	return handle
}
