package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Recovery перехватывает панику обработчика. Ответ 500 формирует ErrorHandler сервера,
// стек и request_id пишутся в лог
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Any("panic", e),
				zap.ByteString("stack", debug.Stack()),
			}
			if requestID, ok := c.Locals("requestid").(string); ok {
				fields = append(fields, zap.String("request_id", requestID))
			}
			logger.Error("Panic recovered", fields...)
		},
	})
}
