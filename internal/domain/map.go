package domain

// Стили отрисовки маршрутов
const (
	PrimaryRouteColor           = "#4285F4"
	SecondaryRouteColor         = "#34A853"
	SelectedPrimaryRouteColor   = "#1565C0"
	SelectedSecondaryRouteColor = "#2E7D32"

	StartMarkerColor = "#34A853"
	EndMarkerColor   = "#EA4335"
)

// PolylineStyle - стиль линии маршрута на карте
type PolylineStyle struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// MarkerStyle - стиль кругового маркера
type MarkerStyle struct {
	Radius      int     `json:"radius"`
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fill_opacity"`
}

// LoadStyle - стиль маршрута сразу после загрузки набора
func LoadStyle(primary bool) PolylineStyle {
	if primary {
		return PolylineStyle{Color: PrimaryRouteColor, Weight: 6, Opacity: 0.8}
	}
	return PolylineStyle{Color: SecondaryRouteColor, Weight: 4, Opacity: 0.8}
}

// HighlightStyle - стиль маршрута после выбора пользователем.
// Выбранный маршрут рисуется толще и темнее, остальные приглушаются
func HighlightStyle(primary, selected bool) PolylineStyle {
	switch {
	case selected && primary:
		return PolylineStyle{Color: SelectedPrimaryRouteColor, Weight: 8, Opacity: 1.0}
	case selected:
		return PolylineStyle{Color: SelectedSecondaryRouteColor, Weight: 8, Opacity: 1.0}
	case primary:
		return PolylineStyle{Color: PrimaryRouteColor, Weight: 4, Opacity: 0.5}
	default:
		return PolylineStyle{Color: SecondaryRouteColor, Weight: 4, Opacity: 0.5}
	}
}

// EndpointMarkerStyle - стиль маркера начала (start=true) или конца маршрута
func EndpointMarkerStyle(start bool) MarkerStyle {
	fill := EndMarkerColor
	if start {
		fill = StartMarkerColor
	}
	return MarkerStyle{
		Radius:      8,
		Color:       "#fff",
		FillColor:   fill,
		Weight:      2,
		Opacity:     1,
		FillOpacity: 1,
	}
}

// LayerHandle - идентификатор объекта, нарисованного на карте
type LayerHandle string

// LayerKind - тип объекта на карте
type LayerKind string

const (
	LayerPolyline LayerKind = "polyline"
	LayerMarker   LayerKind = "marker"
)

// MapLayer - объект на карте
type MapLayer struct {
	Handle      LayerHandle    `json:"handle"`
	Kind        LayerKind      `json:"kind"`
	RouteIndex  int            `json:"route_index"`
	Points      []Coordinate   `json:"points,omitempty"`
	Style       *PolylineStyle `json:"style,omitempty"`
	Position    *Coordinate    `json:"position,omitempty"`
	MarkerStyle *MarkerStyle   `json:"marker_style,omitempty"`
}

// MapViewport - текущая область карты
type MapViewport struct {
	Bounds  BoundingBox `json:"bounds"`
	Padding int         `json:"padding"`
}

// MapSnapshot - состояние карты на момент запроса
type MapSnapshot struct {
	Ready    bool         `json:"ready"`
	Layers   []MapLayer   `json:"layers"`
	Viewport *MapViewport `json:"viewport,omitempty"`

	// SizeVersion растет при каждом InvalidateSize, клиент пересчитывает размер карты при изменении
	SizeVersion int `json:"size_version"`
}
