package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalizeOrigins(t *testing.T) {
	assert.Equal(t, "*", normalizeOrigins(""))
	assert.Equal(t, "*", normalizeOrigins("https://ngo.example.org, *"))
	assert.Equal(t, "https://ngo.example.org,http://localhost:3000",
		normalizeOrigins(" https://ngo.example.org/ ,, http://localhost:3000"))
}

func TestCORS_ExposesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("https://ngo.example.org"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://ngo.example.org")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "https://ngo.example.org", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "X-Request-ID", resp.Header.Get("Access-Control-Expose-Headers"))
}

func TestRecovery_LogsPanicWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(Recovery(zap.New(core)))
	app.Get("/", func(c *fiber.Ctx) error { panic("scene lost") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Panic recovered", entry.Message)
	assert.NotEmpty(t, entry.ContextMap()["request_id"])
	assert.Equal(t, resp.Header.Get("X-Request-ID"), entry.ContextMap()["request_id"])
}
