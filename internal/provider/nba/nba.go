// Package nba adapts the NBA stats API (stats.nba.com) to the
// screamsheet provider contracts.
//
// The stats API wraps every response in named result sets: parallel
// header and row arrays rather than keyed objects. rowSet below gives
// them a by-name accessor.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

const defaultBaseURL = "https://stats.nba.com/stats"

// The stats API rejects requests without browser-like headers.
var requestHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
	"Referer":            "https://www.nba.com/",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}

// Client fetches NBA scores and standings.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a Client with the given fetch timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string              `json:"name"`
	Headers []string            `json:"headers"`
	RowSet  [][]json.RawMessage `json:"rowSet"`
}

// rowSet indexes a result set's rows by column name.
type rowSet struct {
	index map[string]int
	rows  [][]json.RawMessage
}

func (r *statsResponse) set(name string) (*rowSet, bool) {
	for _, rs := range r.ResultSets {
		if rs.Name != name {
			continue
		}
		index := make(map[string]int, len(rs.Headers))
		for i, h := range rs.Headers {
			index[h] = i
		}
		return &rowSet{index: index, rows: rs.RowSet}, true
	}
	return nil, false
}

func (r *rowSet) str(row []json.RawMessage, column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(row[i], &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func (r *rowSet) num(row []json.RawMessage, column string) int {
	i, ok := r.index[column]
	if !ok || i >= len(row) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(row[i], &f); err != nil {
		return 0
	}
	return int(f)
}

// Scores returns the date's games by joining the scoreboard's game
// header and line score result sets.
func (c *Client) Scores(ctx context.Context, date time.Time) ([]screamsheet.GameResult, error) {
	url := fmt.Sprintf("%s/scoreboardv2?DayOffset=0&LeagueID=00&GameDate=%s",
		c.BaseURL, date.Format("2006-01-02"))

	var resp statsResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	headerSet, ok := resp.set("GameHeader")
	if !ok {
		return nil, fmt.Errorf("%w: nba: missing GameHeader result set", screamsheet.ErrDataUnavailable)
	}
	lineSet, ok := resp.set("LineScore")
	if !ok {
		return nil, fmt.Errorf("%w: nba: missing LineScore result set", screamsheet.ErrDataUnavailable)
	}

	type line struct {
		team string
		pts  int
	}
	lines := make(map[string]map[int]line) // game id -> team id -> line
	for _, row := range lineSet.rows {
		gameID := lineSet.str(row, "GAME_ID")
		if lines[gameID] == nil {
			lines[gameID] = make(map[int]line)
		}
		lines[gameID][lineSet.num(row, "TEAM_ID")] = line{
			team: lineSet.str(row, "TEAM_CITY_NAME") + " " + lineSet.str(row, "TEAM_NAME"),
			pts:  lineSet.num(row, "PTS"),
		}
	}

	games := []screamsheet.GameResult{}
	for _, row := range headerSet.rows {
		gameID := headerSet.str(row, "GAME_ID")
		home, homeOK := lines[gameID][headerSet.num(row, "HOME_TEAM_ID")]
		away, awayOK := lines[gameID][headerSet.num(row, "VISITOR_TEAM_ID")]
		if !homeOK || !awayOK {
			continue
		}
		status := headerSet.str(row, "GAME_STATUS_TEXT")
		start, _ := time.Parse("2006-01-02T15:04:05", headerSet.str(row, "GAME_DATE_EST"))
		games = append(games, screamsheet.GameResult{
			Start:     start,
			AwayTeam:  away.team,
			HomeTeam:  home.team,
			AwayScore: away.pts,
			HomeScore: home.pts,
			Status:    status,
			Played:    status == "Final",
		})
	}
	return games, nil
}

// Standings returns the current league table ordered by conference and
// win percentage, as the standings endpoint reports it.
func (c *Client) Standings(ctx context.Context) ([]screamsheet.StandingRow, error) {
	season := currentSeason(time.Now())
	url := fmt.Sprintf("%s/leaguestandingsv3?LeagueID=00&Season=%s&SeasonType=Regular+Season",
		c.BaseURL, season)

	var resp statsResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	set, ok := resp.set("Standings")
	if !ok {
		return nil, fmt.Errorf("%w: nba: missing Standings result set", screamsheet.ErrDataUnavailable)
	}

	rows := []screamsheet.StandingRow{}
	for _, row := range set.rows {
		rows = append(rows, screamsheet.StandingRow{
			Conference: set.str(row, "Conference"),
			Division:   set.str(row, "Division"),
			Team:       set.str(row, "TeamCity") + " " + set.str(row, "TeamName"),
			Wins:       set.num(row, "WINS"),
			Losses:     set.num(row, "LOSSES"),
			Pct:        set.str(row, "WinPCT"),
			Rank:       set.num(row, "DivisionRank"),
			Streak:     set.str(row, "strCurrentStreak"),
		})
	}
	return rows, nil
}

// currentSeason formats the NBA season label ("2025-26") for a moment
// in time. Seasons roll over in October.
func currentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

func (c *Client) fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: nba: %v", screamsheet.ErrDataUnavailable, err)
	}
	for k, val := range requestHeaders {
		req.Header.Set(k, val)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: nba: %v", screamsheet.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: nba: unexpected status %d", screamsheet.ErrDataUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: nba: %v", screamsheet.ErrDataUnavailable, err)
	}
	return nil
}
