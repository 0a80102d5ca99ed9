package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	// Index engine metrics.
	Assessments     *prometheus.CounterVec // labels: profile, category
	SizeAdjustments *prometheus.CounterVec // labels: size

	// Station feed metrics.
	StationFetches        *prometheus.CounterVec // labels: outcome={success,error}
	WeatherAPIDuration    prometheus.Histogram
	FeedRefreshDuration   prometheus.Histogram
	StationsAvailable     prometheus.Gauge
	FeedRunning           prometheus.Gauge
	ReadingsPublished     prometheus.Counter
	ReadingsPublishErrors prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.Assessments,
		m.SizeAdjustments,
		m.StationFetches,
		m.WeatherAPIDuration,
		m.FeedRefreshDuration,
		m.StationsAvailable,
		m.FeedRunning,
		m.ReadingsPublished,
		m.ReadingsPublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tcipi",
			Name:      "assessments_total",
			Help:      "Index assessments computed, by profile and final category.",
		}, []string{"profile", "category"}),
		SizeAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tcipi",
			Name:      "size_adjustments_total",
			Help:      "Assessments that applied a cyclone size adjustment, by size.",
		}, []string{"size"}),
		StationFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tcipi",
			Name:      "station_fetches_total",
			Help:      "Station weather fetches by outcome.",
		}, []string{"outcome"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tcipi",
			Name:      "weather_api_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		FeedRefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tcipi",
			Name:      "feed_refresh_duration_seconds",
			Help:      "Duration of a complete station table refresh.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		StationsAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tcipi",
			Name:      "stations_available",
			Help:      "Stations with a reading in the most recent refresh.",
		}),
		FeedRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tcipi",
			Name:      "feed_running",
			Help:      "1 when the station refresh loop is active, 0 otherwise.",
		}),
		ReadingsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tcipi",
			Name:      "readings_published_total",
			Help:      "Station readings written to the sink topic.",
		}),
		ReadingsPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tcipi",
			Name:      "readings_publish_errors_total",
			Help:      "Failed attempts to publish a station batch.",
		}),
	}
}
