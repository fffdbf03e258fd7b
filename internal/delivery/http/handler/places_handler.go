package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/pkg/utils"
	"github.com/supply-route-service/internal/usecase"
)

// PlacesHandler - подсказки адресов
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// Autocomplete godoc
// @Summary Подсказки адресов
// @Description Подсказки Google Places для полей начала и конца маршрута. Ввод короче 2 символов - пустой список.
// @Tags Places
// @Produce json
// @Param input query string true "Введенный текст"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PlacePrediction}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/autocomplete [get]
func (h *PlacesHandler) Autocomplete(c *fiber.Ctx) error {
	predictions, err := h.placesUC.Autocomplete(c.UserContext(), c.Query("input"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, predictions)
}
