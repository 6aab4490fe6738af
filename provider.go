package screamsheet

import (
	"context"
	"time"
)

// GameResult is one game's final (or in-progress) score.
type GameResult struct {
	Start     time.Time
	AwayTeam  string
	HomeTeam  string
	AwayScore int
	HomeScore int
	Status    string // source-reported state, e.g. "Final", "OFF", "LIVE"
	Played    bool   // false for scheduled games with no score yet
}

// StandingRow is one team's line in a league table. Fields not reported
// by a source stay zero; the standings section picks its columns from
// what is populated.
type StandingRow struct {
	Conference  string
	Division    string
	Team        string
	GamesPlayed int
	Wins        int
	Losses      int
	OTLosses    int
	Points      int
	Pct         string // win percentage as reported, e.g. ".562"
	Rank        int    // rank within division
	Streak      string
}

// Article is one curated news item.
type Article struct {
	Title     string
	Link      string
	Summary   string // plain text, tags stripped by the provider
	Published time.Time
}

// WeatherDay is one day of a forecast strip.
type WeatherDay struct {
	Day         string // "Today", "Tuesday", ...
	Location    string // set on the first day only
	Description string
	Icon        string // glyph chosen by the provider
	High        int
	Low         int
}

// Provider capabilities. Each data source implements the subset relevant
// to its domain; sections depend on exactly one capability each.
//
// Contract for all capabilities: an empty slice (not an error) when the
// period simply has no games or articles; any fetch or parse failure
// returns an error wrapping ErrDataUnavailable. Providers never
// substitute stale or fabricated data.

// ScoreProvider fetches game results for one calendar date.
type ScoreProvider interface {
	Scores(ctx context.Context, date time.Time) ([]GameResult, error)
}

// StandingsProvider fetches the current league table.
type StandingsProvider interface {
	Standings(ctx context.Context) ([]StandingRow, error)
}

// ArticleProvider fetches up to max curated articles, most relevant first.
type ArticleProvider interface {
	Articles(ctx context.Context, max int) ([]Article, error)
}

// ForecastProvider fetches a multi-day forecast for one location.
type ForecastProvider interface {
	Forecast(ctx context.Context) ([]WeatherDay, error)
}
