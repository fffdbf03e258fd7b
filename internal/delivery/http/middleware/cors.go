package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - доступ к API с front end диалога заявки.
// origins - список через запятую. "*" разрешает любой origin без credentials
func CORS(origins string) fiber.Handler {
	allowed := normalizeOrigins(origins)

	return cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language,X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: allowed != "*",
		MaxAge:           600,
	})
}

func normalizeOrigins(origins string) string {
	var list []string
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			return "*"
		}
		if o != "" {
			list = append(list, o)
		}
	}
	if len(list) == 0 {
		return "*"
	}
	return strings.Join(list, ",")
}
