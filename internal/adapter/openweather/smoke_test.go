//go:build openweather

package openweather

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/couchcryptid/tcipi-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real OpenWeatherMap API and require OPENWEATHER_API_KEY.
// Run with: go test -tags=openweather ./internal/adapter/openweather/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	key := os.Getenv("OPENWEATHER_API_KEY")
	if key == "" {
		t.Fatal("OPENWEATHER_API_KEY must be set to run smoke tests")
	}
	return NewClient(key, DefaultBaseURL, 10*time.Second,
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_CurrentConditions(t *testing.T) {
	c := smokeClient(t)
	st := domain.CoastalStations[0]

	cond, err := c.CurrentConditions(context.Background(), st.Lat, st.Lon)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cond.WindSpeedMS, 0.0)
	assert.GreaterOrEqual(t, cond.WindDirection, 0.0)
	assert.Less(t, cond.WindDirection, 361.0)

	r := domain.NewStationReading(st, cond)
	assert.NotEqual(t, domain.BandUnknown, r.Band)
}

func TestSmoke_InvalidKey(t *testing.T) {
	c := smokeClient(t)
	c.apiKey = "invalid"

	_, err := c.CurrentConditions(context.Background(), 25.7617, -80.1918)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
