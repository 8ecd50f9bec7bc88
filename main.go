package main

import (
	"catalog/infra/database"
	"catalog/infra/rabbitmq"
	"catalog/internal/httpserver"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	appConfig := config.Read()
	zap.L().Info("app starting...",
		zap.String("service", appConfig.ServiceName),
		zap.String("databaseDriver", appConfig.DatabaseDriver),
	)

	db, err := database.Open(context.Background(), appConfig)
	if err != nil {
		zap.L().Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	var publisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		rabbitPublisher, err := rabbitmq.NewPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to connect event publisher", zap.Error(err))
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	} else {
		zap.L().Warn("RABBITMQ_URL not set, domain events disabled")
	}

	app := httpserver.New(db, publisher, httpserver.Options{
		ServiceName:        appConfig.ServiceName,
		RateLimitPerMinute: appConfig.RateLimitPerMinute,
	})

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	httpserver.WaitForShutdown(app)
}
