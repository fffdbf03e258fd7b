package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supply-route-service/internal/domain"
)

func TestScene_Ready(t *testing.T) {
	scene := NewScene()
	assert.False(t, scene.IsReady())

	select {
	case <-scene.Ready():
		t.Fatal("scene must not be ready before MarkReady")
	default:
	}

	scene.MarkReady()
	scene.MarkReady()

	assert.True(t, scene.IsReady())
	assert.True(t, scene.Snapshot().Ready)
}

func TestScene_DrawOrder(t *testing.T) {
	scene := NewScene()
	line := []domain.Coordinate{{Lat: 16.8, Lng: 96.1}, {Lat: 21.9, Lng: 95.9}}

	first := scene.DrawPolyline(0, line, domain.LoadStyle(false))
	marker := scene.DrawMarker(0, line[0], domain.EndpointMarkerStyle(true))
	second := scene.DrawPolyline(1, line, domain.LoadStyle(true))

	snapshot := scene.Snapshot()
	require.Len(t, snapshot.Layers, 3)
	assert.Equal(t, first, snapshot.Layers[0].Handle)
	assert.Equal(t, marker, snapshot.Layers[1].Handle)
	assert.Equal(t, second, snapshot.Layers[2].Handle)

	assert.Equal(t, domain.LayerMarker, snapshot.Layers[1].Kind)
	require.NotNil(t, snapshot.Layers[1].Position)
	assert.Equal(t, line[0], *snapshot.Layers[1].Position)
	assert.Equal(t, 1, snapshot.Layers[2].RouteIndex)
	assert.Equal(t, domain.LoadStyle(true), *snapshot.Layers[2].Style)
}

func TestScene_RemoveOverlay(t *testing.T) {
	scene := NewScene()
	handle := scene.DrawMarker(0, domain.Coordinate{Lat: 1, Lng: 2}, domain.EndpointMarkerStyle(false))

	scene.RemoveOverlay(handle)
	scene.RemoveOverlay("missing")

	assert.Empty(t, scene.Snapshot().Layers)
}

func TestScene_DrawCopiesPoints(t *testing.T) {
	scene := NewScene()
	line := []domain.Coordinate{{Lat: 16.8, Lng: 96.1}}

	scene.DrawPolyline(0, line, domain.LoadStyle(true))
	line[0].Lat = 0

	assert.Equal(t, 16.8, scene.Snapshot().Layers[0].Points[0].Lat)
}

func TestScene_Viewport(t *testing.T) {
	scene := NewScene()
	assert.Nil(t, scene.Snapshot().Viewport)

	box := domain.BoundingBox{MinLat: 16.8, MinLng: 95.9, MaxLat: 21.9, MaxLng: 96.2}
	scene.FitBounds(box, 40)
	scene.InvalidateSize()

	snapshot := scene.Snapshot()
	require.NotNil(t, snapshot.Viewport)
	assert.Equal(t, box, snapshot.Viewport.Bounds)
	assert.Equal(t, 40, snapshot.Viewport.Padding)
	assert.Equal(t, 1, snapshot.SizeVersion)
}
