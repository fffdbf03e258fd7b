package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supply-route-service/internal/pkg/errors"
)

// requestIDLocal - ключ, под которым requestid middleware кладет идентификатор запроса
const requestIDLocal = "requestid"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - конверт ошибки. request_id помогает найти запрос в логах
type ErrorResponse struct {
	Error     *errors.AppError `json:"error"`
	RequestID string           `json:"request_id,omitempty"`
}

type Meta struct {
	Total int `json:"total,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendList - список с количеством элементов в meta
func SendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return SendSuccess(c, items, &Meta{Total: len(items)})
}

// SendCreated - ответ 201 с созданным ресурсом
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Data: data,
	})
}

// SendError отдает AppError из цепочки ошибок, остальные ошибки - как 500
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	resp := ErrorResponse{Error: appErr}
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		resp.RequestID = id
	}
	return c.Status(appErr.StatusCode).JSON(resp)
}
