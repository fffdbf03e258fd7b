package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/usecase/dto"
)

// RouteHandler - расчет маршрутов между двумя адресами
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// CalculateRoute godoc
// @Summary Альтернативные маршруты между адресами
// @Description Возвращает все маршруты провайдера с расстоянием (км и мили), временем в пути и стоимостью доставки. Ошибки в формате {error, detail}.
// @Tags Routes
// @Produce json
// @Param start query string true "Адрес начала маршрута"
// @Param end query string true "Адрес конца маршрута"
// @Success 200 {object} dto.CalculateRouteResponse
// @Failure 400 {object} dto.LegacyErrorResponse
// @Failure 500 {object} dto.LegacyErrorResponse
// @Router /calculate-route [get]
func (h *RouteHandler) CalculateRoute(c *fiber.Ctx) error {
	var q dto.CalculateRouteQuery
	if err := c.QueryParser(&q); err != nil {
		return sendLegacyError(c, errors.ErrRouteEndpointsRequired)
	}

	routes, err := h.routeUC.CalculateRoutes(c.UserContext(), q.Start, q.End)
	if err != nil {
		return sendLegacyError(c, err)
	}

	return c.JSON(dto.CalculateRouteResponse{
		Routes: dto.NewRouteResponses(routes),
	})
}

// sendLegacyError - ошибка в формате {error, detail}
func sendLegacyError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.LegacyErrorResponse{
			Error:  "Failed to fetch route",
			Detail: err.Error(),
		})
	}

	resp := dto.LegacyErrorResponse{Error: appErr.Message}
	if len(appErr.Details) > 0 {
		resp.Detail = legacyDetail(appErr.Details)
	}
	return c.Status(appErr.StatusCode).JSON(resp)
}

// legacyDetail - ошибка запроса к провайдеру отдаётся строкой, ответ провайдера объектом
func legacyDetail(details map[string]interface{}) interface{} {
	if msg, ok := details["error"].(string); ok && len(details) == 1 {
		return msg
	}
	return details
}
