package main

import (
	"catalog/app"
	"catalog/infra/database"
	"catalog/infra/rabbitmq"
	"catalog/infra/store"
	"catalog/internal/consumers"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	zap.L().Info("Catalog Worker Service starting...")

	appConfig := config.Read()
	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for worker service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Open(ctx, appConfig)
	if err != nil {
		zap.L().Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	importHandler := consumers.NewImportEventHandler(
		app.NewCategoryUseCase(store.NewCategoryStore(db)),
		app.NewItemUseCase(store.NewItemStore(db)),
	)

	// Identifiers are max+1 without locking, so imports run on a single writer for SQLite.
	workers := 4
	if appConfig.DatabaseDriver == "sqlite" {
		workers = 1
	}

	importConsumer, err := rabbitmq.NewConsumer(appConfig.RabbitMQURL, rabbitmq.ConsumerConfig{
		Exchange:       events.ImportExchange,
		QueueName:      "catalog.import.all.v1",
		RoutingKeys:    consumers.ImportRoutingKeys,
		ServiceName:    appConfig.ServiceName,
		PrefetchCount:  10,
		WorkerPoolSize: workers,
	})
	if err != nil {
		zap.L().Fatal("Failed to create import consumer", zap.Error(err))
	}
	defer importConsumer.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		zap.L().Info("Starting import event consumer...")
		if err := importConsumer.Consume(ctx, importHandler.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
			zap.L().Error("Import consumer error", zap.Error(err))
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := store.PoolStats(db)
				zap.L().Info("Connection pool stats",
					zap.Int("max_open", stats["max_open_connections"].(int)),
					zap.Int("open", stats["open_connections"].(int)),
					zap.Int("in_use", stats["in_use"].(int)),
					zap.Int("idle", stats["idle"].(int)),
					zap.Int64("wait_count", stats["wait_count"].(int64)),
					zap.Int64("wait_duration_ms", stats["wait_duration_ms"].(int64)),
				)
			}
		}
	}()

	zap.L().Info("Worker service started. Waiting for events...",
		zap.String("exchange", events.ImportExchange),
		zap.Int("workers", workers),
	)

	<-sigChan
	zap.L().Info("Shutdown signal received, stopping worker service...")
	cancel()

	// In-flight imports still write to db, which the deferred Close calls tear down.
	<-consumerDone
	zap.L().Info("Worker service stopped gracefully")
}
