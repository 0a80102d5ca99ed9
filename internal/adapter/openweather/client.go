package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/couchcryptid/tcipi-service/internal/observability"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// ErrMissingWindSpeed is returned when a response carries no wind.speed.
var ErrMissingWindSpeed = errors.New("response has no wind.speed")

// Client implements domain.WeatherProvider using the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. Every request is bounded by timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentConditions fetches the current wind, rain and pressure at a coordinate.
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (domain.Conditions, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Conditions{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// url.Error embeds the request URL, which carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return domain.Conditions{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Conditions{}, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	var owResp response
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return domain.Conditions{}, fmt.Errorf("decode response: %w", err)
	}

	cond, err := owResp.conditions()
	if err != nil {
		return domain.Conditions{}, err
	}
	c.logger.Debug("weather fetched", "lat", lat, "lon", lon, "wind_speed_ms", cond.WindSpeedMS)
	return cond, nil
}

// OpenWeatherMap API response types. Only the fields the feed reads are mapped.

type response struct {
	Wind *windBlock `json:"wind"`
	Main *mainBlock `json:"main"`
	Rain *rainBlock `json:"rain"`
}

type windBlock struct {
	Speed *float64 `json:"speed"` // m/s with units=metric
	Deg   *float64 `json:"deg"`
}

type mainBlock struct {
	Pressure *float64 `json:"pressure"` // hPa
}

type rainBlock struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

func (r response) conditions() (domain.Conditions, error) {
	if r.Wind == nil || r.Wind.Speed == nil {
		return domain.Conditions{}, ErrMissingWindSpeed
	}

	c := domain.Conditions{WindSpeedMS: *r.Wind.Speed}
	if r.Wind.Deg != nil {
		c.WindDirection = *r.Wind.Deg
	}
	if r.Main != nil {
		c.Pressure = r.Main.Pressure
	}
	if r.Rain != nil {
		switch {
		case r.Rain.OneHour != nil:
			c.Precipitation = *r.Rain.OneHour
		case r.Rain.ThreeHour != nil:
			c.Precipitation = *r.Rain.ThreeHour
		}
	}
	return c, nil
}
