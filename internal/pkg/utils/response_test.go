package utils_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/pkg/utils"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("requestid", "req-1")
		return h(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSendList(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return utils.SendList(c, []string{"Yangon", "Mandalay"})
	})
	assert.Equal(t, 200, status)
	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["meta"].(map[string]interface{})["total"])

	_, body = call(t, func(c *fiber.Ctx) error {
		var none []int
		return utils.SendList(c, none)
	})
	assert.Equal(t, []interface{}{}, body["data"])
}

func TestSendError(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fmt.Errorf("load dialog: %w", errors.ErrDialogNotFound))
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, "DIALOG_NOT_FOUND", body["error"].(map[string]interface{})["code"])

	status, body = call(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, io.ErrUnexpectedEOF)
	})
	assert.Equal(t, 500, status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"].(map[string]interface{})["code"])
}
