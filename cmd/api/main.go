package main

// @title Supply Route Service API
// @version 1.0.0
// @description Расчет маршрутов доставки гуманитарных грузов со складов до НКО.
// @description
// @description Основные возможности:
// @description - Альтернативные маршруты между адресами с расстоянием, временем и стоимостью доставки
// @description - Подсказки адресов
// @description - Остатки складов и заявки НКО
// @description - Диалог создания заявки с выбором маршрута на карте
// @description - Сводка стоимости доставок

// @contact.name API Support
// @contact.email support@supply-route-service.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/supply-route-service/docs/swagger"
	"github.com/supply-route-service/internal/config"
	httpDelivery "github.com/supply-route-service/internal/delivery/http"
	"github.com/supply-route-service/internal/delivery/http/handler"
	"github.com/supply-route-service/internal/infrastructure/backend"
	"github.com/supply-route-service/internal/infrastructure/google"
	"github.com/supply-route-service/internal/infrastructure/mapview"
	"github.com/supply-route-service/internal/pkg/logger"
	"github.com/supply-route-service/internal/repository/cache"
	"github.com/supply-route-service/internal/repository/postgres"
	redisRepo "github.com/supply-route-service/internal/repository/redis"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/worker"
	"github.com/supply-route-service/internal/worker/janitor"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "supply-route-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Supply Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Float64("tariff_per_km", cfg.Route.TariffPerKm),
	)
	if cfg.Google.APIKey == "" {
		log.Warn("GOOGLE_API_KEY is empty, Directions and Places requests will be rejected")
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and provider clients
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	directionsCacheRepo := postgres.NewDirectionsCacheRepository(db, log)
	ledgerRepo := postgres.NewRouteLedgerRepository(db, log)

	directionsClient := google.NewDirectionsClient(&cfg.Google, log)
	placesClient := google.NewPlacesClient(&cfg.Google, log)
	backendClient := backend.NewClient(&cfg.Backend, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	routeUC := usecase.NewRouteUseCase(
		directionsClient,
		cacheRepo,
		directionsCacheRepo,
		log,
		cfg.Route.TariffPerKm,
		cfg.Cache.RouteCacheTTL,
		cfg.Cache.RouteDBCacheMaxAge,
	)

	placesUC := usecase.NewPlacesUseCase(
		placesClient,
		cacheRepo,
		log,
		cfg.Cache.PlacesCacheTTL,
	)

	supplyRequestUC := usecase.NewSupplyRequestUseCase(
		backendClient,
		streamRepo,
		log,
	)

	ledgerUC := usecase.NewRouteLedgerUseCase(ledgerRepo, log)

	dialogUC := usecase.NewDialogUseCase(
		routeUC,
		supplyRequestUC,
		func() usecase.MapScene { return mapview.NewScene() },
		log,
		cfg.Map.ReadyTimeout,
		cfg.Map.FitPadding,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	handlers := httpDelivery.Handlers{
		Route:         handler.NewRouteHandler(routeUC, log),
		Places:        handler.NewPlacesHandler(placesUC, log),
		SupplyRequest: handler.NewSupplyRequestHandler(supplyRequestUC, log),
		Dialog:        handler.NewDialogHandler(dialogUC, log),
		Report:        handler.NewReportHandler(ledgerUC, log),
	}

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, handlers)

	log.Info("HTTP server initialized")

	// 10. Background maintenance: idle dialogs and stale directions cache rows
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(janitor.NewJanitorWorker(
		dialogUC,
		directionsCacheRepo,
		cfg.Janitor.Interval,
		cfg.Janitor.DialogIdleTimeout,
		cfg.Cache.RouteDBCacheMaxAge,
		log,
	))
	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopWorkers()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
