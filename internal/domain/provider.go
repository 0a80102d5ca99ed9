package domain

import "context"

// Conditions is one current-weather sample from a provider, in provider units.
type Conditions struct {
	WindSpeedMS   float64  // m/s
	WindDirection float64  // degrees, 0 when the provider omits it
	Precipitation float64  // mm/h, 1h accumulation preferred over 3h
	Pressure      *float64 // hPa, nil when absent
}

// WeatherProvider fetches current conditions for a coordinate.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (Conditions, error)
}
