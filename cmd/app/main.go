package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/eventlog"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, closePublisher := newEventPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return configs
}

// newEventPublisher publishes to RabbitMQ when AMQP_URL is set and logs the
// events otherwise.
func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.AMQPURL == "" {
		logger.Info("AMQP_URL is not set, domain events are logged only")
		return eventlog.NewPublisher(logger), func() {}
	}

	publisher, err := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("failed to close RabbitMQ publisher", "error", closeErr)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	tokens, err := httpin.NewTokenCodec(configs.JWTSecret)
	if err != nil {
		log.Fatalf("Invalid token configuration: %v", err)
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.CreateHTTPHandlers()), tokens, logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server stopped unexpectedly", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	shutdown(e, logger)
}

func shutdown(e *echo.Echo, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
