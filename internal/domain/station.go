package domain

import (
	"math"
	"strconv"
	"time"
)

const (
	msToKMH  = 3.6
	kmhToMPH = 0.621371

	// PressureUnavailable is shown when the provider omits pressure.
	PressureUnavailable = "N/A"

	// ArrowUnknown marks a direction that matched no compass bucket.
	ArrowUnknown = "↺"

	compassTolerance = 22.5
)

// Station is a fixed observation point.
type Station struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// CoastalStations is the East Coast and Gulf station table. Every name is
// "City, ST"; names double as Kafka message keys.
var CoastalStations = []Station{
	{Name: "Miami, FL", Lat: 25.7617, Lon: -80.1918},
	{Name: "Tampa, FL", Lat: 27.9506, Lon: -82.4572},
	{Name: "New Orleans, LA", Lat: 29.9511, Lon: -90.0715},
	{Name: "Houston, TX", Lat: 29.7604, Lon: -95.3698},
	{Name: "Jacksonville, FL", Lat: 30.3322, Lon: -81.6557},
	{Name: "Charleston, SC", Lat: 32.7765, Lon: -79.9311},
	{Name: "Savannah, GA", Lat: 32.0809, Lon: -81.0912},
	{Name: "Virginia Beach, VA", Lat: 36.8529, Lon: -75.9780},
	{Name: "Wilmington, NC", Lat: 34.2257, Lon: -77.9447},
	{Name: "Cape Hatteras, NC", Lat: 35.2510, Lon: -75.5280},
	{Name: "Norfolk, VA", Lat: 36.8508, Lon: -76.2859},
	{Name: "Galveston, TX", Lat: 29.3013, Lon: -94.7977},
	{Name: "Port Arthur, TX", Lat: 29.8849, Lon: -93.9399},
	{Name: "Fort Lauderdale, FL", Lat: 26.1224, Lon: -80.1373},
	{Name: "Pensacola, FL", Lat: 30.4213, Lon: -87.2169},
	{Name: "Biloxi, MS", Lat: 30.3960, Lon: -88.8853},
	{Name: "Mobile, AL", Lat: 30.6954, Lon: -88.0399},
	{Name: "Key West, FL", Lat: 24.5551, Lon: -81.7800},
	{Name: "Cocoa, FL", Lat: 28.3861, Lon: -80.7420},
	{Name: "Sarasota, FL", Lat: 27.3364, Lon: -82.5307},
}

// IntensityBand is the storm-intensity class of a sustained wind speed.
type IntensityBand string

const (
	BandMajorHurricane     IntensityBand = "major_hurricane"
	BandHurricane          IntensityBand = "hurricane"
	BandTropicalStorm      IntensityBand = "tropical_storm"
	BandTropicalDepression IntensityBand = "tropical_depression"
	BandUnknown            IntensityBand = "unknown"
)

// Color returns the border colour the dashboard draws for the band.
func (b IntensityBand) Color() string {
	switch b {
	case BandMajorHurricane:
		return "#800080"
	case BandHurricane:
		return "#FF0000"
	case BandTropicalStorm:
		return "#FFA500"
	case BandTropicalDepression:
		return "#002835"
	default:
		return "#ADD8E6"
	}
}

// ClassifyWindBand picks the intensity band for a wind speed in km/h.
// Negative and NaN speeds are BandUnknown.
func ClassifyWindBand(kmh float64) IntensityBand {
	switch {
	case kmh >= 111:
		return BandMajorHurricane
	case kmh >= 74:
		return BandHurricane
	case kmh >= 39:
		return BandTropicalStorm
	case kmh >= 0:
		return BandTropicalDepression
	default:
		return BandUnknown
	}
}

type compassPoint struct {
	angle float64
	arrow string
}

// compassPoints is checked in order; the first match wins, so a direction on
// the boundary between two points resolves to the one listed first.
var compassPoints = []compassPoint{
	{0, "↑"}, {45, "↗"}, {90, "→"}, {135, "↘"},
	{180, "↓"}, {225, "↙"}, {270, "←"}, {315, "↖"}, {360, "↑"},
}

// CompassArrow maps a wind direction in degrees onto one of eight arrows.
// Directions more than 22.5° from every point return ArrowUnknown.
func CompassArrow(deg float64) string {
	for _, p := range compassPoints {
		if math.Abs(deg-p.angle) <= compassTolerance || math.Abs(deg-(p.angle-360)) <= compassTolerance {
			return p.arrow
		}
	}
	return ArrowUnknown
}

// StationReading is the classified observation for one station. When
// Available is false only Station, Error and ObservedAt are set.
type StationReading struct {
	Station       Station       `json:"station"`
	Available     bool          `json:"available"`
	Error         string        `json:"error,omitempty"`
	WindSpeedMPH  float64       `json:"wind_speed_mph"`
	WindSpeedKMH  float64       `json:"wind_speed_kmh"`
	WindDirection float64       `json:"wind_direction"`
	Arrow         string        `json:"arrow,omitempty"`
	Precipitation float64       `json:"precipitation_mm_hr"`
	Pressure      *float64      `json:"pressure_hpa,omitempty"`
	PressureLabel string        `json:"pressure_label,omitempty"`
	Band          IntensityBand `json:"band,omitempty"`
	BandColor     string        `json:"band_color,omitempty"`
	ObservedAt    time.Time     `json:"observed_at"`
}

// NewStationReading converts provider conditions into a classified reading.
func NewStationReading(st Station, c Conditions) StationReading {
	kmh := c.WindSpeedMS * msToKMH
	band := ClassifyWindBand(kmh)

	label := PressureUnavailable
	if c.Pressure != nil {
		label = strconv.FormatFloat(*c.Pressure, 'f', -1, 64)
	}

	return StationReading{
		Station:       st,
		Available:     true,
		WindSpeedMPH:  kmh * kmhToMPH,
		WindSpeedKMH:  kmh,
		WindDirection: c.WindDirection,
		Arrow:         CompassArrow(c.WindDirection),
		Precipitation: c.Precipitation,
		Pressure:      c.Pressure,
		PressureLabel: label,
		Band:          band,
		BandColor:     band.Color(),
		ObservedAt:    clock.Now(),
	}
}

// UnavailableReading records a failed fetch for st.
func UnavailableReading(st Station, err error) StationReading {
	r := StationReading{
		Station:    st,
		ObservedAt: clock.Now(),
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// StationBatch is one refresh of the whole station table. Readings keep the
// order of the table they were fetched from.
type StationBatch struct {
	ID          string           `json:"id"`
	FetchedAt   time.Time        `json:"fetched_at"`
	Readings    []StationReading `json:"readings"`
	Available   int              `json:"available"`
	Unavailable int              `json:"unavailable"`
}

// NewStationBatch stamps readings with an ID and availability counts.
func NewStationBatch(id string, readings []StationReading) StationBatch {
	b := StationBatch{
		ID:        id,
		FetchedAt: clock.Now(),
		Readings:  readings,
	}
	for _, r := range readings {
		if r.Available {
			b.Available++
		} else {
			b.Unavailable++
		}
	}
	return b
}
