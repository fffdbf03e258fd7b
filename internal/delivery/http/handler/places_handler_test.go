package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/delivery/http/handler"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/infrastructure/google"
	"github.com/supply-route-service/internal/usecase"
)

type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlacePrediction), args.Error(1)
}

func TestPlacesHandler_Autocomplete(t *testing.T) {
	places := &MockPlacesRepository{}
	h := handler.NewPlacesHandler(usecase.NewPlacesUseCase(places, nil, zap.NewNop(), time.Minute), zap.NewNop())
	app := fiber.New()
	app.Get("/places/autocomplete", h.Autocomplete)

	places.On("Autocomplete", mock.Anything, "Mandalay").Return([]domain.PlacePrediction{
		{PlaceID: "ChIJ-mdl", Description: "Mandalay, Myanmar (Burma)", MainText: "Mandalay"},
	}, nil).Once()
	places.On("Autocomplete", mock.Anything, "Nowhere").
		Return(nil, &google.APIError{Status: "REQUEST_DENIED", ErrorMessage: "key invalid"}).Once()

	status, body := doGet(t, app, "/places/autocomplete?input=Mandalay")
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "ChIJ-mdl", data[0].(map[string]interface{})["place_id"])

	status, body = doGet(t, app, "/places/autocomplete?input=M")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["data"])

	status, body = doGet(t, app, "/places/autocomplete?input=Nowhere")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "Google Places API Error", errBody["message"])
	assert.Equal(t, "REQUEST_DENIED", errBody["details"].(map[string]interface{})["status"])

	places.AssertExpectations(t)
}
