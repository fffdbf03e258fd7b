package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/pkg/utils"
	"github.com/supply-route-service/internal/pkg/validator"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/usecase/dto"
)

// DialogHandler - диалог создания заявки: позиции, маршруты, выбор и отправка
type DialogHandler struct {
	dialogUC *usecase.DialogUseCase
	logger   *zap.Logger
}

func NewDialogHandler(dialogUC *usecase.DialogUseCase, logger *zap.Logger) *DialogHandler {
	return &DialogHandler{
		dialogUC: dialogUC,
		logger:   logger,
	}
}

// Open godoc
// @Summary Открыть диалог создания заявки
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param request body dto.OpenDialogRequest true "НКО"
// @Success 201 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/dialogs [post]
func (h *DialogHandler) Open(c *fiber.Ctx) error {
	var req dto.OpenDialogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.Open(req.NGOID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, view)
}

// Get godoc
// @Summary Состояние диалога
// @Description Позиции, маршруты, основной и выделенный маршрут, объекты карты
// @Tags Dialogs
// @Produce json
// @Param id path string true "ID диалога"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id} [get]
func (h *DialogHandler) Get(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.Get(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// Close godoc
// @Summary Закрыть диалог
// @Tags Dialogs
// @Param id path string true "ID диалога"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id} [delete]
func (h *DialogHandler) Close(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.dialogUC.Close(id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// MapReady godoc
// @Summary Карта диалога готова
// @Description Клиент сообщает, что карта инициализирована. Ожидающий расчет маршрутов продолжается
// @Tags Dialogs
// @Produce json
// @Param id path string true "ID диалога"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/map-ready [post]
func (h *DialogHandler) MapReady(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.MapReady(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// AddItem godoc
// @Summary Добавить позицию склада
// @Description Рассчитанные маршруты сбрасываются. Количество ограничивается остатком
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param id path string true "ID диалога"
// @Param request body dto.AddItemRequest true "Позиция"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/items [post]
func (h *DialogHandler) AddItem(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.AddItem(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// SetQuantity godoc
// @Summary Изменить количество позиции
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param id path string true "ID диалога"
// @Param item_id path int true "ID товара"
// @Param request body dto.SetQuantityRequest true "Количество"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/items/{item_id} [put]
func (h *DialogHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	itemID, err := parseID(c.Params("item_id"), "item_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.dialogUC.SetQuantity(id, itemID, req.Quantity)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// RemoveItem godoc
// @Summary Удалить позицию
// @Description Рассчитанные маршруты сбрасываются
// @Tags Dialogs
// @Produce json
// @Param id path string true "ID диалога"
// @Param item_id path int true "ID товара"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/items/{item_id} [delete]
func (h *DialogHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	itemID, err := parseID(c.Params("item_id"), "item_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.RemoveItem(id, itemID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// CalculateRoutes godoc
// @Summary Рассчитать маршруты диалога
// @Description Загружает альтернативы на карту и выделяет самый короткий маршрут. Ждет готовности карты
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param id path string true "ID диалога"
// @Param request body dto.CalculateDialogRoutesRequest true "Адреса"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/routes [post]
func (h *DialogHandler) CalculateRoutes(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CalculateDialogRoutesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.dialogUC.CalculateRoutes(c.UserContext(), id, req.Start, req.End)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// SelectRoute godoc
// @Summary Выбрать маршрут
// @Description Выделяет маршрут по индексу. Основной маршрут не меняется
// @Tags Dialogs
// @Accept json
// @Produce json
// @Param id path string true "ID диалога"
// @Param request body dto.SelectRouteRequest true "Индекс маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.DialogResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/routes/selected [put]
func (h *DialogHandler) SelectRoute(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	view, err := h.dialogUC.SelectRoute(id, *req.Index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}

// Submit godoc
// @Summary Отправить заявку
// @Description Собирает заявку из позиций и выделенного маршрута, создает её в backend и закрывает диалог
// @Tags Dialogs
// @Produce json
// @Param id path string true "ID диалога"
// @Success 201 {object} utils.SuccessResponse{data=dto.SubmitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/dialogs/{id}/submit [post]
func (h *DialogHandler) Submit(c *fiber.Ctx) error {
	id, err := parseDialogID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dialogUC.Submit(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
