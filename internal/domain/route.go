package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// KmToMiles - коэффициент перевода километров в мили
const KmToMiles = 0.621371

// ProviderQuantity - пара value/text из ответа Directions API.
// Value хранится как сырой JSON, чтобы отличать отсутствующее значение от нуля
type ProviderQuantity struct {
	Text  string          `json:"text"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Float возвращает числовое значение. ok=false, если значение отсутствует или не число
func (q ProviderQuantity) Float() (float64, bool) {
	raw := bytes.TrimSpace(q.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// ProviderLeg - участок маршрута провайдера (legs[i])
type ProviderLeg struct {
	Distance     ProviderQuantity `json:"distance"`
	Duration     ProviderQuantity `json:"duration"`
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
}

// ProviderRoute - один альтернативный маршрут из ответа провайдера
type ProviderRoute struct {
	Summary          string        `json:"summary,omitempty"`
	Legs             []ProviderLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

// Route - вариант маршрута между двумя адресами с рассчитанными метриками
type Route struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DistanceKm      float64 `json:"distance_km"`
	DurationText    string  `json:"duration"`
	DurationMinutes int     `json:"duration_minutes"`
	Charge          int64   `json:"charge"`
	Polyline        string  `json:"polyline"`
}

// DistanceMiles - расстояние в милях, всегда производное от DistanceKm
func (r Route) DistanceMiles() float64 {
	return r.DistanceKm * KmToMiles
}

// DistanceKmText - расстояние в км с точностью до 2 знаков
func (r Route) DistanceKmText() string {
	return FormatFixed(r.DistanceKm, 2)
}

// DistanceMilesText - расстояние в милях с точностью до 2 знаков
func (r Route) DistanceMilesText() string {
	return FormatFixed(r.DistanceMiles(), 2)
}

// FormatFixed форматирует x с digits знаками после точки по правилам Number.toFixed:
// округляется точное двоичное значение x, половина округляется от нуля
func FormatFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scaled := new(big.Rat).SetFloat64(x)
	scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)))

	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	rest := new(big.Rat).Sub(scaled, new(big.Rat).SetInt(n))
	if rest.Cmp(big.NewRat(1, 2)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	s := n.String()
	if digits <= 0 {
		return sign + s
	}
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
}
