package usecase_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/usecase"
)

func TestComputeRoute(t *testing.T) {
	t.Run("derives metrics from first leg", func(t *testing.T) {
		route, err := usecase.ComputeRoute(providerRoute("12340", "1230", "21 mins", samplePolyline), 550)
		require.NoError(t, err)

		assert.Equal(t, "Yangon, Myanmar", route.Start)
		assert.Equal(t, "Mandalay, Myanmar", route.End)
		assert.InDelta(t, 12.34, route.DistanceKm, 1e-9)
		assert.Equal(t, "12.34", route.DistanceKmText())
		assert.Equal(t, "7.67", route.DistanceMilesText())
		assert.Equal(t, "21 mins", route.DurationText)
		assert.Equal(t, 21, route.DurationMinutes)
		assert.Equal(t, int64(6787), route.Charge)
		assert.Equal(t, samplePolyline, route.Polyline)
	})

	t.Run("half-way distances round up", func(t *testing.T) {
		for meters, want := range map[string]string{
			"125":   "0.13",
			"2625":  "2.63",
			"12125": "12.13",
			"12375": "12.38",
		} {
			route, err := usecase.ComputeRoute(providerRoute(meters, "60", "1 min", ""), 550)
			require.NoError(t, err)
			assert.Equal(t, want, route.DistanceKmText(), meters)
		}
	})

	t.Run("zero distance is valid", func(t *testing.T) {
		route, err := usecase.ComputeRoute(providerRoute("0", "0", "1 min", ""), 550)
		require.NoError(t, err)
		assert.Equal(t, int64(0), route.Charge)
		assert.Equal(t, "0.00", route.DistanceMilesText())
	})

	t.Run("only first leg is used", func(t *testing.T) {
		pr := providerRoute("1000", "60", "1 min", "")
		pr.Legs = append(pr.Legs, domain.ProviderLeg{
			Distance: quantity("", "99000"),
			Duration: quantity("", "9999"),
		})

		route, err := usecase.ComputeRoute(pr, 550)
		require.NoError(t, err)
		assert.Equal(t, int64(550), route.Charge)
		assert.Equal(t, 1, route.DurationMinutes)
	})

	cases := []struct {
		name  string
		route domain.ProviderRoute
	}{
		{name: "no legs", route: domain.ProviderRoute{}},
		{name: "missing distance value", route: providerRoute("", "60", "1 min", "")},
		{name: "missing duration value", route: providerRoute("1000", "", "", "")},
		{name: "null distance value", route: providerRoute("null", "60", "1 min", "")},
		{name: "string distance value", route: providerRoute(`"12 km"`, "60", "1 min", "")},
		{name: "negative distance", route: providerRoute("-5", "60", "1 min", "")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := usecase.ComputeRoute(tc.route, 550)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidLegData))
		})
	}
}

func TestComputeRoute_ChargeIsMonotonic(t *testing.T) {
	var prev int64 = -1
	for _, meters := range []string{"0", "499", "1000", "1001", "25000", "25001", "400000"} {
		route, err := usecase.ComputeRoute(providerRoute(meters, "60", "1 min", ""), 550)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, route.Charge, prev, "meters=%s", meters)
		prev = route.Charge
	}
}

func TestComputeRoutes(t *testing.T) {
	t.Run("keeps provider order", func(t *testing.T) {
		routes, err := usecase.ComputeRoutes([]domain.ProviderRoute{
			providerRoute("5200", "600", "10 mins", ""),
			providerRoute("3100", "420", "7 mins", ""),
		}, 550)
		require.NoError(t, err)
		require.Len(t, routes, 2)
		assert.InDelta(t, 5.2, routes[0].DistanceKm, 1e-9)
		assert.InDelta(t, 3.1, routes[1].DistanceKm, 1e-9)
	})

	t.Run("one broken route fails whole set", func(t *testing.T) {
		routes, err := usecase.ComputeRoutes([]domain.ProviderRoute{
			providerRoute("5200", "600", "10 mins", ""),
			providerRoute("", "420", "7 mins", ""),
		}, 550)
		require.Error(t, err)
		assert.Nil(t, routes)

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidLegData.Code, appErr.Code)
		assert.Equal(t, 1, appErr.Details["route_index"])
	})

	t.Run("empty provider result", func(t *testing.T) {
		routes, err := usecase.ComputeRoutes(nil, 550)
		require.NoError(t, err)
		assert.Empty(t, routes)
	})
}

func TestPickDefault(t *testing.T) {
	t.Run("shortest wins", func(t *testing.T) {
		idx, err := usecase.PickDefault([]domain.Route{
			{DistanceKm: 5.2}, {DistanceKm: 3.1}, {DistanceKm: 7.8},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("tie keeps first", func(t *testing.T) {
		idx, err := usecase.PickDefault([]domain.Route{
			{DistanceKm: 4.0}, {DistanceKm: 2.5}, {DistanceKm: 2.5},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("single route", func(t *testing.T) {
		idx, err := usecase.PickDefault([]domain.Route{{DistanceKm: 9}})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("empty set", func(t *testing.T) {
		_, err := usecase.PickDefault(nil)
		assert.True(t, stderrors.Is(err, errors.ErrEmptyRouteSet))
	})
}

func TestAssembleSupplyRequest(t *testing.T) {
	items := []domain.ItemSelection{
		{ItemID: 10, Quantity: 3, MaxQuantity: 5, WarehouseID: 2},
		{ItemID: 11, Quantity: 1, MaxQuantity: 1, WarehouseID: 2},
	}
	routes := []domain.Route{
		{Start: "A", End: "B", DistanceKm: 12.34, DurationText: "21 mins", DurationMinutes: 21, Charge: 6787, Polyline: "p0"},
		{Start: "A", End: "B", DistanceKm: 15, DurationText: "25 mins", DurationMinutes: 25, Charge: 8250, Polyline: "p1"},
	}

	t.Run("uses highlighted route", func(t *testing.T) {
		payload, err := usecase.AssembleSupplyRequest(7, items, routes, 1)
		require.NoError(t, err)

		assert.Equal(t, int64(7), payload.NGOID)
		assert.Equal(t, int64(2), payload.WarehouseID)
		assert.Equal(t, []domain.RequestedItem{
			{WarehouseID: 2, ItemID: 10, Quantity: 3},
			{WarehouseID: 2, ItemID: 11, Quantity: 1},
		}, payload.Items)
		assert.Equal(t, "15.00", payload.DistanceKm)
		assert.Equal(t, "9.32", payload.DistanceMiles)
		assert.Equal(t, "25 mins", payload.Duration)
		assert.Equal(t, 25, payload.DurationMinutes)
		assert.Equal(t, int64(8250), payload.Charge)
		assert.Equal(t, "p1", payload.Polyline)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := usecase.AssembleSupplyRequest(7, nil, routes, 0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrIncompleteSelection))
		assert.Equal(t, "Please select items and calculate route.", err.(*errors.AppError).Message)
	})

	t.Run("no routes", func(t *testing.T) {
		_, err := usecase.AssembleSupplyRequest(7, items, nil, 0)
		assert.True(t, stderrors.Is(err, errors.ErrIncompleteSelection))
	})

	t.Run("index outside route set", func(t *testing.T) {
		_, err := usecase.AssembleSupplyRequest(7, items, routes, 2)
		assert.True(t, stderrors.Is(err, errors.ErrIncompleteSelection))
	})

	t.Run("mixed warehouses", func(t *testing.T) {
		mixed := append([]domain.ItemSelection{}, items...)
		mixed = append(mixed, domain.ItemSelection{ItemID: 12, Quantity: 1, MaxQuantity: 1, WarehouseID: 3})

		_, err := usecase.AssembleSupplyRequest(7, mixed, routes, 0)
		assert.True(t, stderrors.Is(err, errors.ErrWarehouseMismatch))
	})
}
