package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/couchcryptid/tcipi-service/internal/domain"
)

// DefaultOpenWeatherURL is the current-weather endpoint of OpenWeatherMap.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

const maxFeedConcurrency = 64

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr           string
	LogLevel           string
	LogFormat          string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// Index engine profile.
	Profile domain.Profile

	// Station feed configuration.
	OpenWeatherAPIKey   string
	OpenWeatherURL      string
	FeedEnabled         bool
	WeatherTimeout      time.Duration
	FeedRefreshInterval time.Duration
	FeedConcurrency     int

	// Optional Kafka sink for station readings.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	profile, err := domain.ProfileByName(sharedcfg.EnvOrDefault("TCIPI_PROFILE", domain.ProfileOHC.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid TCIPI_PROFILE: %w", err)
	}

	weatherTimeout, err := parsePositiveDuration("WEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	refreshInterval, err := parsePositiveDuration("FEED_REFRESH_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}

	concurrency, err := parseFeedConcurrency()
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	feedEnabled := apiKey != ""
	if v := os.Getenv("FEED_ENABLED"); v != "" {
		feedEnabled = v == "true"
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		CORSAllowedOrigins: parseList(sharedcfg.EnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		Profile: profile,

		OpenWeatherAPIKey:   apiKey,
		OpenWeatherURL:      sharedcfg.EnvOrDefault("OPENWEATHER_URL", DefaultOpenWeatherURL),
		FeedEnabled:         feedEnabled,
		WeatherTimeout:      weatherTimeout,
		FeedRefreshInterval: refreshInterval,
		FeedConcurrency:     concurrency,

		KafkaEnabled: kafkaEnabled,
		KafkaBrokers: brokers,
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "station-wind-readings"),
	}

	if cfg.FeedEnabled && cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("FEED_ENABLED is true but OPENWEATHER_API_KEY is not set")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required")
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseFeedConcurrency() (int, error) {
	s := os.Getenv("FEED_CONCURRENCY")
	if s == "" {
		return 4, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxFeedConcurrency {
		return 0, fmt.Errorf("invalid FEED_CONCURRENCY: must be between 1 and %d", maxFeedConcurrency)
	}
	return n, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
