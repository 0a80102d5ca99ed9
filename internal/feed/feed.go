package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/couchcryptid/tcipi-service/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// BatchPublisher writes a refreshed station batch to a downstream sink.
type BatchPublisher interface {
	PublishBatch(ctx context.Context, batch domain.StationBatch) error
}

// Options tunes a Feed. Zero values fall back to defaults.
type Options struct {
	Stations        []domain.Station
	Concurrency     int
	Interval        time.Duration
	PublishAttempts int
	Clock           clockwork.Clock
}

const (
	defaultConcurrency     = 4
	defaultInterval        = 5 * time.Minute
	defaultPublishAttempts = 3

	initialPublishBackoff = 200 * time.Millisecond
	maxPublishBackoff     = 2 * time.Second
)

// Feed fetches current conditions for a fixed station table. Each station is
// fetched once per refresh; a failure marks only that station unavailable.
type Feed struct {
	provider        domain.WeatherProvider
	publisher       BatchPublisher
	stations        []domain.Station
	concurrency     int
	interval        time.Duration
	publishAttempts int
	clock           clockwork.Clock
	logger          *slog.Logger
	metrics         *observability.Metrics
	latest          atomic.Pointer[domain.StationBatch]
}

// New creates a Feed. Pass a nil publisher to keep batches in memory only.
func New(provider domain.WeatherProvider, publisher BatchPublisher, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Feed {
	if opts.Stations == nil {
		opts.Stations = domain.CoastalStations
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.PublishAttempts <= 0 {
		opts.PublishAttempts = defaultPublishAttempts
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Feed{
		provider:        provider,
		publisher:       publisher,
		stations:        opts.Stations,
		concurrency:     opts.Concurrency,
		interval:        opts.Interval,
		publishAttempts: opts.PublishAttempts,
		clock:           opts.Clock,
		logger:          logger,
		metrics:         metrics,
	}
}

// CheckReadiness returns nil once at least one refresh has completed.
func (f *Feed) CheckReadiness(_ context.Context) error {
	if f.latest.Load() == nil {
		return errors.New("station feed has not completed a refresh yet")
	}
	return nil
}

// Latest returns the most recent batch, if any.
func (f *Feed) Latest() (domain.StationBatch, bool) {
	b := f.latest.Load()
	if b == nil {
		return domain.StationBatch{}, false
	}
	return *b, true
}

// Run refreshes immediately and then on every interval tick until the
// context is cancelled.
func (f *Feed) Run(ctx context.Context) error {
	f.logger.Info("station feed started", "stations", len(f.stations), "interval", f.interval)
	f.metrics.FeedRunning.Set(1)
	defer f.metrics.FeedRunning.Set(0)

	f.Refresh(ctx)

	ticker := f.clock.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("station feed stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return nil
			}
			f.Refresh(ctx)
		}
	}
}

// Refresh runs one full feed cycle: Fetch, then publish the batch when a
// publisher is configured. It never fails as a whole.
func (f *Feed) Refresh(ctx context.Context) domain.StationBatch {
	batch, ok := f.fetch(ctx)
	if ok {
		f.publish(ctx, batch)
	}
	return batch
}

// Fetch fetches every station once and stores the result as the latest batch
// without publishing it. A batch gathered under a cancelled context is
// returned but neither stored nor published.
func (f *Feed) Fetch(ctx context.Context) domain.StationBatch {
	batch, _ := f.fetch(ctx)
	return batch
}

func (f *Feed) fetch(ctx context.Context) (domain.StationBatch, bool) {
	start := f.clock.Now()

	readings := make([]domain.StationReading, len(f.stations))
	// A plain group: one station's error must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, st := range f.stations {
		g.Go(func() error {
			readings[i] = f.fetchStation(ctx, st)
			return nil
		})
	}
	_ = g.Wait()

	batch := domain.NewStationBatch(uuid.NewString(), readings)
	if err := ctx.Err(); err != nil {
		f.logger.Warn("feed refresh aborted, keeping previous batch",
			"batch_id", batch.ID,
			"reason", err,
		)
		return batch, false
	}
	f.latest.Store(&batch)

	f.metrics.StationsAvailable.Set(float64(batch.Available))
	f.metrics.FeedRefreshDuration.Observe(f.clock.Since(start).Seconds())
	f.logger.Info("feed refresh complete",
		"batch_id", batch.ID,
		"available", batch.Available,
		"unavailable", batch.Unavailable,
	)
	return batch, true
}

func (f *Feed) fetchStation(ctx context.Context, st domain.Station) domain.StationReading {
	cond, err := f.provider.CurrentConditions(ctx, st.Lat, st.Lon)
	if err != nil {
		f.logger.Warn("station fetch failed, marking unavailable",
			"station", st.Name,
			"lat", st.Lat,
			"lon", st.Lon,
			"error", err,
		)
		f.metrics.StationFetches.WithLabelValues("error").Inc()
		return domain.UnavailableReading(st, err)
	}
	f.metrics.StationFetches.WithLabelValues("success").Inc()
	return domain.NewStationReading(st, cond)
}

// publish hands the batch to the publisher, retrying with exponential backoff.
// A batch that still fails is logged and counted; the in-memory batch stays
// authoritative either way.
func (f *Feed) publish(ctx context.Context, batch domain.StationBatch) {
	if f.publisher == nil {
		return
	}
	backoff := initialPublishBackoff
	for attempt := 1; ; attempt++ {
		err := f.publisher.PublishBatch(ctx, batch)
		if err == nil {
			f.metrics.ReadingsPublished.Add(float64(len(batch.Readings)))
			return
		}
		if attempt >= f.publishAttempts || ctx.Err() != nil {
			f.logger.Error("publish batch failed", "error", err, "batch_id", batch.ID, "attempts", attempt)
			f.metrics.ReadingsPublishErrors.Inc()
			return
		}
		f.logger.Warn("publish batch failed, retrying",
			"error", err,
			"batch_id", batch.ID,
			"attempt", attempt,
			"backoff", backoff,
		)
		if !sharedretry.SleepWithContext(ctx, backoff) {
			f.metrics.ReadingsPublishErrors.Inc()
			return
		}
		backoff = sharedretry.NextBackoff(backoff, maxPublishBackoff)
	}
}
