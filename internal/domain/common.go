package domain

// Coordinate - точка в десятичных градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox - прямоугольник, описывающий набор точек
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// BoundsOf возвращает границы набора точек. ok=false для пустого набора
func BoundsOf(points []Coordinate) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box = BoundingBox{
		MinLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLat: points[0].Lat,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		if p.Lat < box.MinLat {
			box.MinLat = p.Lat
		}
		if p.Lat > box.MaxLat {
			box.MaxLat = p.Lat
		}
		if p.Lng < box.MinLng {
			box.MinLng = p.Lng
		}
		if p.Lng > box.MaxLng {
			box.MaxLng = p.Lng
		}
	}

	return box, true
}

// Valid проверяет, что координата лежит в допустимых границах
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
