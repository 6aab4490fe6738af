package screamsheet

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Section is one self-contained content block of a screamsheet.
//
// Lifecycle: constructed empty, Fetch populates the section's data,
// Fragments renders it. Fetch reports its provider's failure as a return
// value so the sheet can log it, but the section always degrades to an
// absent-data state rather than carrying the failure forward: Fragments
// is callable at any point, including before Fetch or after a failed
// one, and then yields a non-empty placeholder.
type Section interface {
	Title() string
	Fetch(ctx context.Context) error
	Fragments() []Fragment
}

// ScoresSection shows every game result from one date in a three-column
// grid of mini score tables.
type ScoresSection struct {
	title    string
	provider ScoreProvider
	date     time.Time

	games   []GameResult
	fetched bool
}

// NewScoresSection wires a scores section to a score provider for the
// given report date.
func NewScoresSection(title string, provider ScoreProvider, date time.Time) *ScoresSection {
	return &ScoresSection{title: title, provider: provider, date: date}
}

func (s *ScoresSection) Title() string { return s.title }

// Fetch retrieves the date's games. On failure the section holds no data
// and the error is returned for the caller's log.
func (s *ScoresSection) Fetch(ctx context.Context) error {
	games, err := s.provider.Scores(ctx, s.date)
	if err != nil {
		s.games = nil
		s.fetched = false
		return fmt.Errorf("%s: %w", s.title, err)
	}
	s.games = games
	s.fetched = true
	return nil
}

func (s *ScoresSection) Fragments() []Fragment {
	out := []Fragment{Heading{Level: 2, Text: s.title}}
	if !s.fetched {
		return append(out, Unavailable{What: s.title})
	}

	var cells []Fragment
	for _, g := range s.games {
		if !g.Played {
			continue
		}
		cells = append(cells, Table{
			Class: "score",
			Rows: [][]string{
				{g.AwayTeam, strconv.Itoa(g.AwayScore)},
				{"@" + g.HomeTeam, strconv.Itoa(g.HomeScore)},
			},
		})
	}
	if len(cells) == 0 {
		return append(out, Paragraph{Text: "No games played.", Class: "empty"})
	}
	return append(out, Columns{Count: 3, Items: cells})
}

// StandingsSection shows a league table grouped by conference and
// division, in the order the provider reports them.
type StandingsSection struct {
	title    string
	provider StandingsProvider

	rows    []StandingRow
	fetched bool
}

// NewStandingsSection wires a standings section to a standings provider.
func NewStandingsSection(title string, provider StandingsProvider) *StandingsSection {
	return &StandingsSection{title: title, provider: provider}
}

func (s *StandingsSection) Title() string { return s.title }

func (s *StandingsSection) Fetch(ctx context.Context) error {
	rows, err := s.provider.Standings(ctx)
	if err != nil {
		s.rows = nil
		s.fetched = false
		return fmt.Errorf("%s: %w", s.title, err)
	}
	s.rows = rows
	s.fetched = true
	return nil
}

func (s *StandingsSection) Fragments() []Fragment {
	out := []Fragment{Heading{Level: 2, Text: s.title}}
	if !s.fetched {
		return append(out, Unavailable{What: s.title})
	}
	if len(s.rows) == 0 {
		return append(out, Paragraph{Text: "No standings reported.", Class: "empty"})
	}

	// Group rows into division tables, preserving provider order.
	var tables []Fragment
	var current string
	var group []StandingRow
	flush := func() {
		if len(group) == 0 {
			return
		}
		tables = append(tables, standingsTable(current, group))
		group = nil
	}
	for _, row := range s.rows {
		label := divisionLabel(row)
		if label != current {
			flush()
			current = label
		}
		group = append(group, row)
	}
	flush()

	return append(out, Columns{Count: 2, Items: tables})
}

func divisionLabel(row StandingRow) string {
	switch {
	case row.Conference != "" && row.Division != "":
		return row.Conference + " / " + row.Division
	case row.Division != "":
		return row.Division
	case row.Conference != "":
		return row.Conference
	}
	return "League"
}

// standingsTable picks hockey-style columns when the source reports
// points, win/loss/percentage columns otherwise.
func standingsTable(caption string, rows []StandingRow) Table {
	hockey := false
	for _, r := range rows {
		if r.Points > 0 || r.OTLosses > 0 {
			hockey = true
			break
		}
	}

	t := Table{Caption: caption, Class: "standings"}
	if hockey {
		t.Header = []string{"Team", "GP", "W", "L", "OTL", "PTS", "STRK"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{
				r.Team,
				strconv.Itoa(r.GamesPlayed),
				strconv.Itoa(r.Wins),
				strconv.Itoa(r.Losses),
				strconv.Itoa(r.OTLosses),
				strconv.Itoa(r.Points),
				r.Streak,
			})
		}
		return t
	}

	t.Header = []string{"Team", "W", "L", "PCT"}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Team,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			r.Pct,
		})
	}
	return t
}

// ArticlesSection shows up to max curated articles in two columns, each
// with its headline and a short summary.
type ArticlesSection struct {
	title    string
	provider ArticleProvider
	max      int

	articles []Article
	fetched  bool
}

// NewArticlesSection wires an article section to a news provider.
// max caps the number of articles requested; values below one fall back
// to a single article.
func NewArticlesSection(title string, provider ArticleProvider, max int) *ArticlesSection {
	if max < 1 {
		max = 1
	}
	return &ArticlesSection{title: title, provider: provider, max: max}
}

func (s *ArticlesSection) Title() string { return s.title }

func (s *ArticlesSection) Fetch(ctx context.Context) error {
	articles, err := s.provider.Articles(ctx, s.max)
	if err != nil {
		s.articles = nil
		s.fetched = false
		return fmt.Errorf("%s: %w", s.title, err)
	}
	s.articles = articles
	s.fetched = true
	return nil
}

func (s *ArticlesSection) Fragments() []Fragment {
	out := []Fragment{Heading{Level: 2, Text: s.title}}
	if !s.fetched {
		return append(out, Unavailable{What: s.title})
	}
	if len(s.articles) == 0 {
		return append(out, Paragraph{Text: "No articles today.", Class: "empty"})
	}

	var items []Fragment
	for _, a := range s.articles {
		items = append(items, Group{
			Heading{Level: 3, Text: a.Title},
			Paragraph{Text: a.Summary, Class: "article"},
		})
	}
	return append(out, Columns{Count: 2, Items: items})
}

// WeatherSection shows a multi-day forecast strip: one column per day
// with conditions and high/low temperatures.
type WeatherSection struct {
	title    string
	provider ForecastProvider

	days    []WeatherDay
	fetched bool
}

// NewWeatherSection wires a weather section to a forecast provider.
func NewWeatherSection(title string, provider ForecastProvider) *WeatherSection {
	return &WeatherSection{title: title, provider: provider}
}

func (s *WeatherSection) Title() string { return s.title }

func (s *WeatherSection) Fetch(ctx context.Context) error {
	days, err := s.provider.Forecast(ctx)
	if err != nil {
		s.days = nil
		s.fetched = false
		return fmt.Errorf("%s: %w", s.title, err)
	}
	s.days = days
	s.fetched = true
	return nil
}

func (s *WeatherSection) Fragments() []Fragment {
	out := []Fragment{Heading{Level: 2, Text: s.title}}
	if !s.fetched {
		return append(out, Unavailable{What: s.title})
	}
	if len(s.days) == 0 {
		return append(out, Paragraph{Text: "No forecast available.", Class: "empty"})
	}

	header := make([]string, len(s.days))
	conditions := make([]string, len(s.days))
	temps := make([]string, len(s.days))
	for i, d := range s.days {
		header[i] = d.Day
		if d.Location != "" {
			header[i] = d.Day + " — " + d.Location
		}
		conditions[i] = d.Icon + " " + d.Description
		temps[i] = fmt.Sprintf("%d° / %d°", d.High, d.Low)
	}
	return append(out, Table{
		Class:  "weather",
		Header: header,
		Rows:   [][]string{conditions, temps},
	})
}
