// Package config loads and validates the screamsheet run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pmartinson/go-screamsheet/internal/fileutil"
	"github.com/pmartinson/go-screamsheet/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrUnknownTeam     = errors.New("unknown team")
	ErrUnknownFeed     = errors.New("unknown news feed")
	ErrInvalidValue    = errors.New("invalid config value")
)

// News feed kinds accepted by news.feed.
const (
	FeedMLBTradeRumors = "mlbtraderumors"
	FeedPlayersTribune = "playerstribune"
	FeedFanGraphs      = "fangraphs"
)

// Config holds all configuration for a batch run.
type Config struct {
	Output   OutputConfig  `yaml:"output"`
	Log      LogConfig     `yaml:"log"`
	Print    PrintConfig   `yaml:"print"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	MLB      TeamConfig    `yaml:"mlb"`
	NHL      TeamConfig    `yaml:"nhl"`
	News     NewsConfig    `yaml:"news"`
	Weather  WeatherConfig `yaml:"weather"`
	Masthead string        `yaml:"masthead"` // markdown note at the bottom of every sheet
}

// OutputConfig defines where generated PDFs land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig defines the daily run log location and file prefix.
type LogConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// PrintConfig defines print submission options.
type PrintConfig struct {
	Enabled bool   `yaml:"enabled"`
	Printer string `yaml:"printer"` // lp destination queue; empty = system default
}

// TimeoutConfig bounds each class of blocking call. The original system
// blocked indefinitely on fetches; bounded timeouts are a deliberate
// configuration choice here, not an inferred one.
type TimeoutConfig struct {
	FetchSeconds  int `yaml:"fetchSeconds"`
	RenderSeconds int `yaml:"renderSeconds"`
	PrintSeconds  int `yaml:"printSeconds"`
}

// Fetch returns the provider fetch timeout.
func (t TimeoutConfig) Fetch() time.Duration { return time.Duration(t.FetchSeconds) * time.Second }

// Render returns the Chrome render timeout.
func (t TimeoutConfig) Render() time.Duration { return time.Duration(t.RenderSeconds) * time.Second }

// Print returns the lp submission timeout.
func (t TimeoutConfig) Print() time.Duration { return time.Duration(t.PrintSeconds) * time.Second }

// TeamConfig names the featured team for a sports sheet.
type TeamConfig struct {
	Team string `yaml:"team"`
	// FilterToTeam restricts the scores section to the featured team's
	// games instead of the whole league.
	FilterToTeam bool `yaml:"filterToTeam"`
}

// NewsConfig defines the news digest sheet.
type NewsConfig struct {
	Feed           string   `yaml:"feed"`
	FavoriteTeams  []string `yaml:"favoriteTeams"`
	MaxArticles    int      `yaml:"maxArticles"`
	IncludeWeather bool     `yaml:"includeWeather"`
}

// WeatherConfig locates the forecast.
type WeatherConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Location  string  `yaml:"location"`
}

// DefaultConfig returns the configuration the original daily run used:
// Philadelphia teams, the MLB Trade Rumors feed, and a Bryn Mawr PA
// forecast.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{Dir: "Files"},
		Log:      LogConfig{Dir: "logs", Prefix: "screamsheet"},
		Print:    PrintConfig{Enabled: true},
		Timeouts: TimeoutConfig{FetchSeconds: 15, RenderSeconds: 30, PrintSeconds: 60},
		MLB:      TeamConfig{Team: "Philadelphia Phillies"},
		NHL:      TeamConfig{Team: "Philadelphia Flyers"},
		News: NewsConfig{
			Feed:           FeedMLBTradeRumors,
			FavoriteTeams:  []string{"Phillies", "Padres", "Yankees"},
			MaxArticles:    4,
			IncludeWeather: true,
		},
		Weather: WeatherConfig{
			Latitude:  40.02,
			Longitude: -75.34,
			Location:  "Bryn Mawr, PA",
		},
		Masthead: "*The Daily Screamsheet* — all the news that fits on one page.",
	}
}

// Validate checks cross-field consistency and lookup-table membership so
// a bad config fails at startup, not mid-generation.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir cannot be empty", ErrInvalidValue)
	}
	if c.Log.Dir == "" || c.Log.Prefix == "" {
		return fmt.Errorf("%w: log.dir and log.prefix cannot be empty", ErrInvalidValue)
	}
	for name, v := range map[string]int{
		"timeouts.fetchSeconds":  c.Timeouts.FetchSeconds,
		"timeouts.renderSeconds": c.Timeouts.RenderSeconds,
		"timeouts.printSeconds":  c.Timeouts.PrintSeconds,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, name, v)
		}
	}

	if c.MLB.Team != "" {
		if _, ok := MLBTeamID(c.MLB.Team); !ok {
			return fmt.Errorf("%w: mlb.team %q", ErrUnknownTeam, c.MLB.Team)
		}
	}
	if c.NHL.Team != "" {
		if _, ok := NHLTeamID(c.NHL.Team); !ok {
			return fmt.Errorf("%w: nhl.team %q", ErrUnknownTeam, c.NHL.Team)
		}
	}

	switch c.News.Feed {
	case FeedMLBTradeRumors, FeedPlayersTribune, FeedFanGraphs:
	default:
		return fmt.Errorf("%w: news.feed %q", ErrUnknownFeed, c.News.Feed)
	}
	if c.News.MaxArticles < 1 || c.News.MaxArticles > 10 {
		return fmt.Errorf("%w: news.maxArticles must be between 1 and 10, got %d", ErrInvalidValue, c.News.MaxArticles)
	}

	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return fmt.Errorf("%w: weather.latitude %.2f", ErrInvalidValue, c.Weather.Latitude)
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		return fmt.Errorf("%w: weather.longitude %.2f", ErrInvalidValue, c.Weather.Longitude)
	}

	return nil
}

// Load loads configuration from a file path or config name. A value
// containing a path separator is treated as a file path; anything else
// is searched for in the standard locations. An empty value returns
// DefaultConfig.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return DefaultConfig(), nil
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name: current
// directory first, then ~/.config/go-screamsheet/, trying .yaml then
// .yml in each.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-screamsheet", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %v", ErrConfigNotFound, tried)
}
