// Package weather adapts the National Weather Service API
// (api.weather.gov) to the screamsheet forecast provider contract.
//
// The NWS API is a two-step fetch: /points/<lat>,<lon> resolves the
// coordinates to a gridpoint forecast URL, which then yields a list of
// half-day periods alternating day and night.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

const (
	defaultBaseURL = "https://api.weather.gov"
	userAgent      = "go-screamsheet (github.com/pmartinson/go-screamsheet)"
)

// iconGlyphs maps forecast phrases to printable glyphs. More specific
// phrases come first so "Chance Rain Showers" reads as rain, not cloud.
var iconGlyphs = []struct {
	phrase string
	glyph  string
}{
	{"THUNDERSTORM", "⛈"},
	{"T-STORM", "⛈"},
	{"SLEET", "⛆"},
	{"RAIN/SNOW", "⛆"},
	{"WINTERY MIX", "⛆"},
	{"SNOW", "❄"},
	{"RAIN", "☔"},
	{"SHOWERS", "☔"},
	{"DRIZZLE", "☔"},
	{"FOG", "≈"},
	{"HAZE", "≈"},
	{"WINDY", "≋"},
	{"BLUSTERY", "≋"},
	{"PARTLY SUNNY", "⛅"},
	{"MOSTLY SUNNY", "⛅"},
	{"PARTLY CLOUDY", "⛅"},
	{"MOSTLY CLOUDY", "☁"},
	{"CLOUDY", "☁"},
	{"SUNNY", "☀"},
	{"CLEAR", "☾"},
}

const defaultGlyph = "—"

// Client fetches 5-day forecasts for a fixed location.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	Latitude  float64
	Longitude float64
	Location  string
}

// New creates a Client for the given coordinates.
func New(lat, lon float64, location string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		HTTP:      &http.Client{Timeout: timeout},
		Latitude:  lat,
		Longitude: lon,
		Location:  location,
	}
}

type pointsResponse struct {
	Forecast string `json:"forecast"`
}

type forecastResponse struct {
	Periods []period `json:"periods"`
}

type period struct {
	Name          string `json:"name"`
	IsDaytime     bool   `json:"isDaytime"`
	Temperature   int    `json:"temperature"`
	ShortForecast string `json:"shortForecast"`
}

// Forecast returns up to five days. The first entry carries the
// location label and keeps the full period name ("This Afternoon");
// later entries use the bare day name. Lows come from the paired
// night period.
func (c *Client) Forecast(ctx context.Context) ([]screamsheet.WeatherDay, error) {
	var points pointsResponse
	pointsURL := fmt.Sprintf("%s/points/%g,%g", c.BaseURL, c.Latitude, c.Longitude)
	if err := c.fetch(ctx, pointsURL, &points); err != nil {
		return nil, err
	}
	if points.Forecast == "" {
		return nil, fmt.Errorf("%w: weather: points response has no forecast URL", screamsheet.ErrDataUnavailable)
	}

	var forecast forecastResponse
	if err := c.fetch(ctx, points.Forecast, &forecast); err != nil {
		return nil, err
	}
	periods := forecast.Periods
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: weather: forecast has no periods", screamsheet.ErrDataUnavailable)
	}

	// When fetched at night the leading period is tonight; today's
	// daytime numbers then live one period in.
	dayIndex := 0
	if !periods[0].IsDaytime {
		dayIndex = 1
	}
	if dayIndex >= len(periods) {
		dayIndex = 0
	}

	days := []screamsheet.WeatherDay{}
	location := c.Location
	for i := dayIndex; i < len(periods) && len(days) < 5; i += 2 {
		day := periods[i]
		low := 0
		if i+1 < len(periods) {
			low = periods[i+1].Temperature
		}
		name := day.Name
		if fields := strings.Fields(name); len(days) > 0 && len(fields) > 0 {
			name = fields[0]
		}
		days = append(days, screamsheet.WeatherDay{
			Day:         name,
			Location:    location,
			Description: day.ShortForecast,
			Icon:        glyphFor(day.ShortForecast),
			High:        day.Temperature,
			Low:         low,
		})
		location = ""
	}
	return days, nil
}

func glyphFor(description string) string {
	upper := strings.ToUpper(description)
	for _, g := range iconGlyphs {
		if strings.Contains(upper, g.phrase) {
			return g.glyph
		}
	}
	return defaultGlyph
}

func (c *Client) fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: weather: %v", screamsheet.ErrDataUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/ld+json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: weather: %v", screamsheet.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: weather: unexpected status %d", screamsheet.ErrDataUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: weather: %v", screamsheet.ErrDataUnavailable, err)
	}
	return nil
}
