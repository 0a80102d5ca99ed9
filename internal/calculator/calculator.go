package calculator

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/couchcryptid/tcipi-service/internal/observability"
)

// Calculator runs the index engine under one profile and records the outcome.
type Calculator struct {
	profile domain.Profile
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Calculator bound to profile.
func New(profile domain.Profile, logger *slog.Logger, metrics *observability.Metrics) *Calculator {
	return &Calculator{
		profile: profile,
		logger:  logger,
		metrics: metrics,
	}
}

// Profile returns the profile the calculator was built with.
func (c *Calculator) Profile() domain.Profile {
	return c.profile
}

// Assess scores obs and applies the size adjustment when the profile allows it.
// The engine is total over float inputs, so Assess never fails.
func (c *Calculator) Assess(ctx context.Context, obs domain.Observation, size domain.SizeClass) domain.Assessment {
	a := domain.Assess(c.profile, obs, size)

	c.metrics.Assessments.WithLabelValues(a.Profile, string(a.Category)).Inc()
	if a.Adjusted {
		c.metrics.SizeAdjustments.WithLabelValues(string(a.Size)).Inc()
	}

	c.logger.DebugContext(ctx, "assessment computed",
		"profile", a.Profile,
		"raw_index", a.RawIndex,
		"index", a.Index,
		"category", a.Category,
		"size", a.Size,
		"adjusted", a.Adjusted,
	)
	return a
}
