package main

import (
	"fmt"
	"path/filepath"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
	"github.com/pmartinson/go-screamsheet/internal/config"
	"github.com/pmartinson/go-screamsheet/internal/dateutil"
	"github.com/pmartinson/go-screamsheet/internal/provider/mlb"
	"github.com/pmartinson/go-screamsheet/internal/provider/nba"
	"github.com/pmartinson/go-screamsheet/internal/provider/news"
	"github.com/pmartinson/go-screamsheet/internal/provider/nhl"
	"github.com/pmartinson/go-screamsheet/internal/provider/weather"
)

// sheetPath names a report's PDF in the output directory, e.g.
// MLB_Scream_Sheet_20260830.pdf.
func sheetPath(outDir, kind string, date time.Time) string {
	return filepath.Join(outDir, fmt.Sprintf("%s_Scream_Sheet_%s.pdf", kind, dateutil.Stamp(date)))
}

// buildRoster assembles the fixed daily roster: MLB, NHL, NBA, then the
// news digest. Team names and the feed kind are resolved here so a
// misconfigured roster fails before any sheet is built; the builders
// themselves perform no I/O until the batch runs them.
func buildRoster(cfg *config.Config, reportDate time.Time, outDir string) ([]screamsheet.Entry, error) {
	mlbEntry, err := newMLBEntry(cfg, reportDate, outDir)
	if err != nil {
		return nil, err
	}
	nhlEntry, err := newNHLEntry(cfg, reportDate, outDir)
	if err != nil {
		return nil, err
	}
	newsEntry, err := newNewsEntry(cfg, reportDate, outDir)
	if err != nil {
		return nil, err
	}
	return []screamsheet.Entry{
		mlbEntry,
		nhlEntry,
		newNBAEntry(cfg, reportDate, outDir),
		newsEntry,
	}, nil
}

func sheetOptions(cfg *config.Config) []screamsheet.Option {
	opts := []screamsheet.Option{screamsheet.WithRenderTimeout(cfg.Timeouts.Render())}
	if cfg.Masthead != "" {
		opts = append(opts, screamsheet.WithMasthead(cfg.Masthead))
	}
	return opts
}

func newMLBEntry(cfg *config.Config, reportDate time.Time, outDir string) (screamsheet.Entry, error) {
	var teamID int
	if cfg.MLB.Team != "" {
		id, ok := config.MLBTeamID(cfg.MLB.Team)
		if !ok {
			return screamsheet.Entry{}, fmt.Errorf("%w: mlb.team %q", config.ErrUnknownTeam, cfg.MLB.Team)
		}
		teamID = id
	}
	outputPath := sheetPath(outDir, "MLB", reportDate)
	build := func() (*screamsheet.Screamsheet, error) {
		client := mlb.New(cfg.Timeouts.Fetch())
		if cfg.MLB.FilterToTeam {
			client.TeamID = teamID
		}
		sections := []screamsheet.Section{
			screamsheet.NewScoresSection("MLB Scores", client, reportDate),
			screamsheet.NewStandingsSection("MLB Standings", client),
		}
		return screamsheet.New("MLB Scream Sheet", outputPath, reportDate, sections, sheetOptions(cfg)...), nil
	}
	return screamsheet.Entry{Label: "MLB", Build: build, OutputPath: outputPath}, nil
}

func newNHLEntry(cfg *config.Config, reportDate time.Time, outDir string) (screamsheet.Entry, error) {
	if cfg.NHL.Team != "" {
		if _, ok := config.NHLTeamID(cfg.NHL.Team); !ok {
			return screamsheet.Entry{}, fmt.Errorf("%w: nhl.team %q", config.ErrUnknownTeam, cfg.NHL.Team)
		}
	}
	outputPath := sheetPath(outDir, "NHL", reportDate)
	build := func() (*screamsheet.Screamsheet, error) {
		client := nhl.New(cfg.Timeouts.Fetch())
		sections := []screamsheet.Section{
			screamsheet.NewScoresSection("NHL Scores", client, reportDate),
			screamsheet.NewStandingsSection("NHL Standings", client),
		}
		return screamsheet.New("NHL Scream Sheet", outputPath, reportDate, sections, sheetOptions(cfg)...), nil
	}
	return screamsheet.Entry{Label: "NHL", Build: build, OutputPath: outputPath}, nil
}

func newNBAEntry(cfg *config.Config, reportDate time.Time, outDir string) screamsheet.Entry {
	outputPath := sheetPath(outDir, "NBA", reportDate)
	build := func() (*screamsheet.Screamsheet, error) {
		client := nba.New(cfg.Timeouts.Fetch())
		sections := []screamsheet.Section{
			screamsheet.NewScoresSection("NBA Scores", client, reportDate),
			screamsheet.NewStandingsSection("NBA Standings", client),
		}
		return screamsheet.New("NBA Scream Sheet", outputPath, reportDate, sections, sheetOptions(cfg)...), nil
	}
	return screamsheet.Entry{Label: "NBA", Build: build, OutputPath: outputPath}
}

func newNewsEntry(cfg *config.Config, reportDate time.Time, outDir string) (screamsheet.Entry, error) {
	var feed *news.Feed
	var title string
	switch cfg.News.Feed {
	case config.FeedMLBTradeRumors:
		feed = news.MLBTradeRumors(cfg.News.FavoriteTeams)
		title = "MLB Trade Rumors"
	case config.FeedPlayersTribune:
		feed = news.PlayersTribune()
		title = "The Players' Tribune"
	case config.FeedFanGraphs:
		feed = news.FanGraphs()
		title = "FanGraphs"
	default:
		return screamsheet.Entry{}, fmt.Errorf("%w: %q", config.ErrUnknownFeed, cfg.News.Feed)
	}

	outputPath := sheetPath(outDir, "News", reportDate)
	build := func() (*screamsheet.Screamsheet, error) {
		var sections []screamsheet.Section
		if cfg.News.IncludeWeather {
			forecast := weather.New(cfg.Weather.Latitude, cfg.Weather.Longitude, cfg.Weather.Location, cfg.Timeouts.Fetch())
			sections = append(sections, screamsheet.NewWeatherSection("Weather Report", forecast))
		}
		sections = append(sections, screamsheet.NewArticlesSection("Latest News", feed, cfg.News.MaxArticles))
		return screamsheet.New(title, outputPath, reportDate, sections, sheetOptions(cfg)...), nil
	}
	return screamsheet.Entry{Label: "NewsDigest", Build: build, OutputPath: outputPath}, nil
}
