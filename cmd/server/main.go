package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-logistics/internal/broker"
	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/handler"
	httphandler "github.com/MKhiriev/go-logistics/internal/handler/http"
	"github.com/MKhiriev/go-logistics/internal/limiter"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/server"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/workers"
	"github.com/MKhiriev/go-logistics/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-logistics-server")
	if err := run(log, buildInfo); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(log *logger.Logger, buildInfo models.AppBuildInfo) error {
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("broker", cfg.Broker.URL != "").
		Bool("redis", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	var (
		serviceOptions []service.Option
		handlerOptions []httphandler.Option
	)

	// rate limiting is optional: without Redis the public endpoints are open
	if cfg.Storage.Cache.RedisAddress != "" {
		redisClient, err := limiter.NewRedisClient(ctx, cfg.Storage.Cache)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		} else {
			defer redisClient.Close()
			handlerOptions = append(handlerOptions, httphandler.WithRateLimiter(limiter.NewRedisLimiter(redisClient, cfg.Server.RateLimit)))
		}
	}

	if cfg.Broker.URL != "" {
		publisher := broker.NewPublisher(cfg.Broker, log)
		defer publisher.Close()
		serviceOptions = append(serviceOptions, service.WithEventPublisher(publisher))
	}

	services, err := service.NewServices(storages, *cfg, log, serviceOptions...)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	background := workers.NewWorkers(workers.NewRetentionWorker(services.NotificationService, cfg.Workers, log))
	if cfg.Broker.URL != "" {
		consumer := broker.NewConsumer(cfg.Broker, storages.DB.IsRetryable, log)
		background.Add(workers.NewEventConsumerWorker(consumer, services.NotificationService, log))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log, handlerOptions...)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, background)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
