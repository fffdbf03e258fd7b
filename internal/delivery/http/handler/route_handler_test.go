package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/delivery/http/handler"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/infrastructure/google"
	"github.com/supply-route-service/internal/usecase"
)

type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetRoutes(ctx context.Context, origin, destination string) ([]domain.ProviderRoute, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderRoute), args.Error(1)
}

func newRouteApp(directions *MockDirectionsRepository) *fiber.App {
	uc := usecase.NewRouteUseCase(directions, nil, nil, zap.NewNop(), 550, time.Hour, 0)
	h := handler.NewRouteHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Get("/calculate-route", h.CalculateRoute)
	return app
}

func providerRoute(meters, seconds string) domain.ProviderRoute {
	r := domain.ProviderRoute{
		Legs: []domain.ProviderLeg{{
			Distance:     domain.ProviderQuantity{Text: "12.3 km", Value: json.RawMessage(meters)},
			Duration:     domain.ProviderQuantity{Text: "21 mins", Value: json.RawMessage(seconds)},
			StartAddress: "Yangon, Myanmar",
			EndAddress:   "Mandalay, Myanmar",
		}},
	}
	r.OverviewPolyline.Points = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	return r
}

func doGet(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded), string(body))
	return resp.StatusCode, decoded
}

func TestRouteHandler_CalculateRoute(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		app := newRouteApp(directions)

		for _, target := range []string{"/calculate-route", "/calculate-route?start=Yangon", "/calculate-route?end=Mandalay"} {
			status, body := doGet(t, app, target)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, map[string]interface{}{"error": "Start and end parameters are required."}, body)
		}
		directions.AssertNotCalled(t, "GetRoutes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("routes with metrics", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		directions.On("GetRoutes", mock.Anything, "Yangon", "Mandalay").
			Return([]domain.ProviderRoute{providerRoute("12340", "1230")}, nil)
		app := newRouteApp(directions)

		status, body := doGet(t, app, "/calculate-route?start=Yangon&end=Mandalay")
		require.Equal(t, fiber.StatusOK, status)

		routes, ok := body["routes"].([]interface{})
		require.True(t, ok)
		require.Len(t, routes, 1)

		route := routes[0].(map[string]interface{})
		assert.Equal(t, "Yangon, Myanmar", route["start"])
		assert.Equal(t, "Mandalay, Myanmar", route["end"])
		assert.Equal(t, "12.34", route["distance_km"])
		assert.Equal(t, "7.67", route["distance_miles"])
		assert.Equal(t, "21 mins", route["duration"])
		assert.Equal(t, float64(21), route["duration_minutes"])
		assert.Equal(t, float64(6787), route["charge"])
		assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", route["polyline"])
	})

	t.Run("provider status error", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		directions.On("GetRoutes", mock.Anything, "Yangon", "Atlantis").
			Return(nil, &google.APIError{
				Status: "NOT_FOUND",
				Response: map[string]interface{}{
					"status":             "NOT_FOUND",
					"routes":             []interface{}{},
					"geocoded_waypoints": []interface{}{map[string]interface{}{"geocoder_status": "ZERO_RESULTS"}},
				},
			})
		app := newRouteApp(directions)

		status, body := doGet(t, app, "/calculate-route?start=Yangon&end=Atlantis")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Google Directions API Error", body["error"])

		// the whole provider response is passed through
		detail, ok := body["detail"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", detail["status"])
		assert.Equal(t, []interface{}{}, detail["routes"])
		assert.Len(t, detail["geocoded_waypoints"], 1)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		directions := &MockDirectionsRepository{}
		directions.On("GetRoutes", mock.Anything, "Yangon", "Mandalay").
			Return(nil, io.ErrUnexpectedEOF)
		app := newRouteApp(directions)

		status, body := doGet(t, app, "/calculate-route?start=Yangon&end=Mandalay")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Failed to fetch route", body["error"])
		assert.Equal(t, io.ErrUnexpectedEOF.Error(), body["detail"])
	})
}
