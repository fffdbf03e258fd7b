package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/delivery/http/handler"
	"github.com/supply-route-service/internal/delivery/http/middleware"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/pkg/utils"
)

// Handlers - обработчики HTTP API
type Handlers struct {
	Route         *handler.RouteHandler
	Places        *handler.PlacesHandler
	SupplyRequest *handler.SupplyRequestHandler
	Dialog        *handler.DialogHandler
	Report        *handler.ReportHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Supply Route Service",
		ReadTimeout:  10 * time.Second,
		// расчет маршрута в диалоге может ждать готовности карты
		WriteTimeout: 10*time.Second + cfg.Map.ReadyTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber.App для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(requestid.New())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// путь и формат ответа сохранены для существующего front end
	s.app.Get("/calculate-route", s.handlers.Route.CalculateRoute)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/places/autocomplete", s.handlers.Places.Autocomplete)

	api.Get("/stock", s.handlers.SupplyRequest.ListStock)
	api.Get("/supply-requests", s.handlers.SupplyRequest.ListByNGO)
	api.Get("/supply-requests/:id/delivery-cost", s.handlers.SupplyRequest.DeliveryCost)

	if s.handlers.Report != nil {
		api.Get("/reports/route-costs", s.handlers.Report.RouteCosts)
	}

	dialogs := api.Group("/dialogs")
	dialogs.Post("/", s.handlers.Dialog.Open)
	dialogs.Get("/:id", s.handlers.Dialog.Get)
	dialogs.Delete("/:id", s.handlers.Dialog.Close)
	dialogs.Post("/:id/map-ready", s.handlers.Dialog.MapReady)
	dialogs.Post("/:id/items", s.handlers.Dialog.AddItem)
	dialogs.Put("/:id/items/:item_id", s.handlers.Dialog.SetQuantity)
	dialogs.Delete("/:id/items/:item_id", s.handlers.Dialog.RemoveItem)
	dialogs.Post("/:id/routes", s.handlers.Dialog.CalculateRoutes)
	dialogs.Put("/:id/routes/selected", s.handlers.Dialog.SelectRoute)
	dialogs.Post("/:id/submit", s.handlers.Dialog.Submit)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, слишком большое тело) в общем формате
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		appErr := errors.ErrInternalServer
		switch code {
		case fiber.StatusNotFound:
			appErr = errors.ErrNotFound.WithMessage(err.Error())
		case fiber.StatusInternalServerError:
		default:
			appErr = errors.New("HTTP_ERROR", err.Error(), code)
		}

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}
