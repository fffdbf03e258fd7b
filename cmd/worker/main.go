package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/logger"
	"github.com/supply-route-service/internal/repository/cache"
	"github.com/supply-route-service/internal/repository/postgres"
	redisRepo "github.com/supply-route-service/internal/repository/redis"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/worker"
	"github.com/supply-route-service/internal/worker/ledger"
)

// Процесс переносит события stream:supply-request:created в журнал стоимости доставок
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Route ledger worker is disabled. Set WORKER_ENABLED=true to enable.")
		return
	}

	log, err := logger.New(cfg.Log.Level, "supply-route-worker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Route ledger worker failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Route ledger worker stopped")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting route ledger worker",
		zap.String("stream", domain.StreamSupplyRequestCreated),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("claim_idle", cfg.Worker.ClaimIdle),
		zap.Duration("read_timeout", cfg.Worker.StreamReadTimeout))

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	ledgerUC := usecase.NewRouteLedgerUseCase(postgres.NewRouteLedgerRepository(db, log), log)
	streamRepo := redisRepo.NewStreamRepositoryWithTimeout(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	manager := worker.NewWorkerManager(log)
	manager.Register(ledger.NewRouteLedgerWorker(
		streamRepo,
		ledgerUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		cfg.Worker.ClaimIdle,
		log,
	))

	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}

	<-ctx.Done()
	log.Info("Received shutdown signal")

	return manager.Stop()
}
