package domain

import (
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWindBand(t *testing.T) {
	tests := []struct {
		name     string
		kmh      float64
		expected IntensityBand
		color    string
	}{
		{"major hurricane edge", 111, BandMajorHurricane, "#800080"},
		{"major hurricane", 180, BandMajorHurricane, "#800080"},
		{"just below major", 110.9, BandHurricane, "#FF0000"},
		{"hurricane edge", 74, BandHurricane, "#FF0000"},
		{"tropical storm edge", 39, BandTropicalStorm, "#FFA500"},
		{"tropical depression", 20, BandTropicalDepression, "#002835"},
		{"calm", 0, BandTropicalDepression, "#002835"},
		{"negative", -1, BandUnknown, "#ADD8E6"},
		{"NaN", math.NaN(), BandUnknown, "#ADD8E6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := ClassifyWindBand(tt.kmh)
			assert.Equal(t, tt.expected, band)
			assert.Equal(t, tt.color, band.Color())
		})
	}
}

func TestCompassArrow(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected string
	}{
		{"north", 0, "↑"},
		{"full circle is north", 360, "↑"},
		{"22.5 tie resolves to north", 22.5, "↑"},
		{"just past 22.5", 22.6, "↗"},
		{"northeast", 45, "↗"},
		{"67.5 tie resolves to northeast", 67.5, "↗"},
		{"east", 90, "→"},
		{"southeast", 135, "↘"},
		{"south", 180, "↓"},
		{"southwest", 225, "↙"},
		{"west", 270, "←"},
		{"northwest", 315, "↖"},
		{"337.5 tie resolves to northwest", 337.5, "↖"},
		{"350 wraps to north", 350, "↑"},
		{"slightly negative is north", -10, "↑"},
		{"far out of range", 400, ArrowUnknown},
		{"NaN", math.NaN(), ArrowUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompassArrow(tt.deg))
		})
	}
}

func TestCompassArrow_EveryValidDegreeHasArrow(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.5 {
		assert.NotEqual(t, ArrowUnknown, CompassArrow(deg), "deg=%v", deg)
	}
}

func TestNewStationReading(t *testing.T) {
	fixed := time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	st := Station{Name: "Miami, FL", Lat: 25.7617, Lon: -80.1918}

	t.Run("breezy with pressure", func(t *testing.T) {
		pressure := 1013.0
		r := NewStationReading(st, Conditions{WindSpeedMS: 10, WindDirection: 90, Precipitation: 0.4, Pressure: &pressure})

		assert.True(t, r.Available)
		assert.Empty(t, r.Error)
		assert.InDelta(t, 36.0, r.WindSpeedKMH, 1e-9)
		assert.InDelta(t, 22.369356, r.WindSpeedMPH, 1e-6)
		assert.Equal(t, 90.0, r.WindDirection)
		assert.Equal(t, "→", r.Arrow)
		assert.Equal(t, 0.4, r.Precipitation)
		require.NotNil(t, r.Pressure)
		assert.Equal(t, 1013.0, *r.Pressure)
		assert.Equal(t, "1013", r.PressureLabel)
		assert.Equal(t, BandTropicalDepression, r.Band)
		assert.Equal(t, "#002835", r.BandColor)
		assert.Equal(t, fixed, r.ObservedAt)
	})

	t.Run("major hurricane without pressure", func(t *testing.T) {
		r := NewStationReading(st, Conditions{WindSpeedMS: 31})

		assert.InDelta(t, 111.6, r.WindSpeedKMH, 1e-9)
		assert.Equal(t, BandMajorHurricane, r.Band)
		assert.Nil(t, r.Pressure)
		assert.Equal(t, PressureUnavailable, r.PressureLabel)
		assert.Equal(t, "↑", r.Arrow)
	})
}

func TestUnavailableReading(t *testing.T) {
	st := CoastalStations[0]
	r := UnavailableReading(st, errors.New("timeout"))

	assert.False(t, r.Available)
	assert.Equal(t, "timeout", r.Error)
	assert.Equal(t, st, r.Station)
	assert.Empty(t, r.Band)
	assert.False(t, r.ObservedAt.IsZero())
}

func TestNewStationBatch(t *testing.T) {
	readings := []StationReading{
		NewStationReading(CoastalStations[0], Conditions{WindSpeedMS: 5}),
		UnavailableReading(CoastalStations[1], errors.New("boom")),
		NewStationReading(CoastalStations[2], Conditions{WindSpeedMS: 12}),
	}

	b := NewStationBatch("batch-1", readings)

	assert.Equal(t, "batch-1", b.ID)
	assert.Equal(t, 2, b.Available)
	assert.Equal(t, 1, b.Unavailable)
	assert.Len(t, b.Readings, 3)
	assert.False(t, b.FetchedAt.IsZero())
}

func TestCoastalStations(t *testing.T) {
	require.Len(t, CoastalStations, 20)

	seen := map[string]bool{}
	for _, st := range CoastalStations {
		assert.False(t, seen[st.Name], "duplicate station %s", st.Name)
		seen[st.Name] = true
		assert.InDelta(t, 30, st.Lat, 7, st.Name)
		assert.Less(t, st.Lon, -75.0, st.Name)
	}
}

func TestCoastalStations_NamesCarryState(t *testing.T) {
	cityState := regexp.MustCompile(`^[A-Z][A-Za-z .]+, [A-Z]{2}$`)
	for _, st := range CoastalStations {
		assert.Regexp(t, cityState, st.Name)
	}
	assert.Equal(t, "Sarasota, FL", CoastalStations[len(CoastalStations)-1].Name)
}
