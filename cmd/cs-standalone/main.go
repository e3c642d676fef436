package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
	"github.com/tuanvumaihuynh/coffee-store/internal/event"
	"github.com/tuanvumaihuynh/coffee-store/internal/http"
	"github.com/tuanvumaihuynh/coffee-store/internal/log"
	"github.com/tuanvumaihuynh/coffee-store/internal/relay"
	"github.com/tuanvumaihuynh/coffee-store/internal/repository"
	"github.com/tuanvumaihuynh/coffee-store/internal/service"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/mq"
	"github.com/tuanvumaihuynh/coffee-store/internal/telemetry"
	"github.com/tuanvumaihuynh/coffee-store/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running cs-standalone: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Relay    config.Relay
		Kafka    config.Kafka
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("config new: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("telemetry init tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("db new pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("mq new kafka producer: %w", err)
	}
	defer kafkaProducer.Close()

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("mq new kafka consumer: %w", err)
	}
	defer kafkaConsumer.Close()

	coffeeRepository := repository.NewCoffeeRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	coffeeService := service.NewCoffeeService(dbClient, coffeeRepository, outboxMsgRepository)

	interruptChan := cmdutil.InterruptChan()

	// Services start in order; a failing start stops the ones already running.
	eventSvc := event.New(logger, kafkaConsumer)
	cleanupEvent, err := eventSvc.Run(ctx)
	if err != nil {
		return fmt.Errorf("event service run: %w", err)
	}
	logger.InfoContext(ctx, "event service started")

	httpSvc := http.New(cfg.HTTP, logger, coffeeService, dbClient)
	cleanupHTTP, err := httpSvc.Run(ctx)
	if err != nil {
		cleanupEvent()
		return fmt.Errorf("http service run: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	relaySvc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
	cleanupRelay := relaySvc.Run(ctx)
	logger.InfoContext(ctx, "relay service started")

	<-interruptChan

	var (
		wg      sync.WaitGroup
		httpErr error
	)

	wg.Go(func() {
		logger.InfoContext(ctx, "http service is shutting down")
		httpErr = cleanupHTTP(ctx)
		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Go(func() {
		logger.InfoContext(ctx, "relay service is shutting down")
		cleanupRelay()
		logger.InfoContext(ctx, "relay service is stopped")
	})

	wg.Go(func() {
		logger.InfoContext(ctx, "event service is shutting down")
		cleanupEvent()
		logger.InfoContext(ctx, "event service is stopped")
	})

	wg.Wait()

	if httpErr != nil && !errors.Is(httpErr, context.Canceled) {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", httpErr))
	}

	return nil
}
