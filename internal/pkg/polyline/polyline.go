// Package polyline реализует формат Google Encoded Polyline (точность 1e-5)
package polyline

import (
	"math"
	"strings"

	"github.com/supply-route-service/internal/domain"
	apperrors "github.com/supply-route-service/internal/pkg/errors"
)

const (
	precision = 1e5

	// одна координата занимает не больше 7 чанков по 5 бит
	maxShift = 35
)

// Decode разбирает строку polyline в список координат.
// Пустая строка дает пустой список. Обрезанная или поврежденная строка
// возвращает ErrMalformedPolyline, частичный результат не возвращается
func Decode(encoded string) ([]domain.Coordinate, error) {
	points := make([]domain.Coordinate, 0, len(encoded)/4)

	index, lat, lng := 0, 0, 0
	for index < len(encoded) {
		dLat, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		if next >= len(encoded) {
			return nil, malformed(next, "latitude without longitude")
		}

		dLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dLat
		lng += dLng

		point := domain.Coordinate{
			Lat: float64(lat) / precision,
			Lng: float64(lng) / precision,
		}
		if !point.Valid() {
			return nil, malformed(index, "coordinate out of range")
		}
		points = append(points, point)
	}

	return points, nil
}

// Encode кодирует координаты в строку polyline.
// Координаты округляются до 5 знаков, результат детерминирован
func Encode(points []domain.Coordinate) string {
	var sb strings.Builder
	sb.Grow(len(points) * 8)

	prevLat, prevLng := 0, 0
	for _, p := range points {
		lat := int(math.Round(p.Lat * precision))
		lng := int(math.Round(p.Lng * precision))

		encodeValue(&sb, lat-prevLat)
		encodeValue(&sb, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

func decodeValue(encoded string, index int) (int, int, error) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, malformed(index, "truncated value")
		}
		b := int(encoded[index]) - 63
		if b < 0 || b > 0x3f {
			return 0, index, malformed(index, "invalid character")
		}
		index++

		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
		if shift >= maxShift {
			return 0, index, malformed(index, "value too long")
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

func encodeValue(sb *strings.Builder, v int) {
	if v < 0 {
		v = ^(v << 1)
	} else {
		v <<= 1
	}

	for v >= 0x20 {
		sb.WriteByte(byte((v&0x1f)|0x20) + 63)
		v >>= 5
	}
	sb.WriteByte(byte(v + 63))
}

func malformed(offset int, reason string) error {
	return apperrors.ErrMalformedPolyline.WithDetails(map[string]interface{}{
		"offset": offset,
		"reason": reason,
	})
}
