package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	httpadapter "github.com/couchcryptid/tcipi-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/tcipi-service/internal/adapter/kafka"
	"github.com/couchcryptid/tcipi-service/internal/adapter/openweather"
	"github.com/couchcryptid/tcipi-service/internal/calculator"
	"github.com/couchcryptid/tcipi-service/internal/config"
	"github.com/couchcryptid/tcipi-service/internal/feed"
	"github.com/couchcryptid/tcipi-service/internal/observability"
	"github.com/joho/godotenv"
)

// staticReadiness is used when no background component gates readiness.
type staticReadiness struct{}

func (staticReadiness) CheckReadiness(_ context.Context) error { return nil }

func main() {
	// Optional .env for local runs.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	calc := calculator.New(cfg.Profile, logger, metrics)
	logger.Info("index profile selected",
		"profile", cfg.Profile.Name,
		"fifth_factor", cfg.Profile.FifthFactor,
		"size_adjustment", cfg.Profile.SizeAdjustment,
	)

	var (
		ready       sharedobs.ReadinessChecker = staticReadiness{}
		stations    httpadapter.StationSource
		stationFeed *feed.Feed
		writer      *kafkaadapter.Writer
	)

	// Station feed is feature-flagged via FEED_ENABLED / OPENWEATHER_API_KEY.
	if cfg.FeedEnabled {
		var publisher feed.BatchPublisher
		if cfg.KafkaEnabled {
			writer = kafkaadapter.NewWriter(cfg, logger)
			publisher = writer
			logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		}
		client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.WeatherTimeout, metrics, logger)
		stationFeed = feed.New(client, publisher, logger, metrics, feed.Options{
			Concurrency: cfg.FeedConcurrency,
			Interval:    cfg.FeedRefreshInterval,
		})
		ready = stationFeed
		stations = stationFeed
		logger.Info("station feed enabled", "interval", cfg.FeedRefreshInterval, "timeout", cfg.WeatherTimeout)
	} else {
		logger.Info("station feed disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, calc, stations, cfg.CORSAllowedOrigins, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start station feed.
	if stationFeed != nil {
		go func() {
			if err := stationFeed.Run(ctx); err != nil {
				logger.Error("station feed error", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
