// Package nhl adapts the NHL API (api-web.nhle.com) to the screamsheet
// provider contracts.
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

const defaultBaseURL = "https://api-web.nhle.com/v1"

// Game states that carry a reportable score.
var scoredStates = map[string]bool{
	"FINAL": true,
	"OFF":   true,
	"LIVE":  true,
}

// Client fetches NHL scores and standings.
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

type localized struct {
	Default string `json:"default"`
}

type scheduleResponse struct {
	GameWeek []struct {
		Games []struct {
			StartTimeUTC string       `json:"startTimeUTC"`
			GameState    string       `json:"gameState"`
			AwayTeam     scheduleTeam `json:"awayTeam"`
			HomeTeam     scheduleTeam `json:"homeTeam"`
		} `json:"games"`
	} `json:"gameWeek"`
}

type scheduleTeam struct {
	PlaceName  localized `json:"placeName"`
	CommonName localized `json:"commonName"`
	Score      *int      `json:"score"`
}

// Scores returns the date's games in final, off, or live states.
// Future games are skipped; the section wants scores, not a schedule.
func (c *Client) Scores(ctx context.Context, date time.Time) ([]screamsheet.GameResult, error) {
	url := fmt.Sprintf("%s/schedule/%s", c.BaseURL, date.Format("2006-01-02"))

	var resp scheduleResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	games := []screamsheet.GameResult{}
	if len(resp.GameWeek) == 0 {
		return games, nil
	}
	for _, g := range resp.GameWeek[0].Games {
		if !scoredStates[g.GameState] {
			continue
		}
		start, _ := time.Parse(time.RFC3339, g.StartTimeUTC)
		result := screamsheet.GameResult{
			Start:    start,
			AwayTeam: g.AwayTeam.PlaceName.Default + " " + g.AwayTeam.CommonName.Default,
			HomeTeam: g.HomeTeam.PlaceName.Default + " " + g.HomeTeam.CommonName.Default,
			Status:   g.GameState,
			Played:   true,
		}
		if g.AwayTeam.Score != nil {
			result.AwayScore = *g.AwayTeam.Score
		}
		if g.HomeTeam.Score != nil {
			result.HomeScore = *g.HomeTeam.Score
		}
		games = append(games, result)
	}
	return games, nil
}

type standingsResponse struct {
	Standings []struct {
		TeamName         localized `json:"teamName"`
		ConferenceName   string    `json:"conferenceName"`
		DivisionName     string    `json:"divisionName"`
		DivisionSequence int       `json:"divisionSequence"`
		GamesPlayed      int       `json:"gamesPlayed"`
		Wins             int       `json:"wins"`
		Losses           int       `json:"losses"`
		OTLosses         int       `json:"otLosses"`
		Points           int       `json:"points"`
		StreakCode       string    `json:"streakCode"`
		StreakCount      int       `json:"streakCount"`
	} `json:"standings"`
}

// Standings returns the current league table from the dedicated "now"
// endpoint, in the API's conference/division order.
func (c *Client) Standings(ctx context.Context) ([]screamsheet.StandingRow, error) {
	var resp standingsResponse
	if err := c.fetch(ctx, c.BaseURL+"/standings/now", &resp); err != nil {
		return nil, err
	}

	rows := []screamsheet.StandingRow{}
	for _, t := range resp.Standings {
		rows = append(rows, screamsheet.StandingRow{
			Conference:  t.ConferenceName,
			Division:    t.DivisionName,
			Team:        t.TeamName.Default,
			GamesPlayed: t.GamesPlayed,
			Wins:        t.Wins,
			Losses:      t.Losses,
			OTLosses:    t.OTLosses,
			Points:      t.Points,
			Rank:        t.DivisionSequence,
			Streak:      fmt.Sprintf("%s%d", t.StreakCode, t.StreakCount),
		})
	}
	return rows, nil
}

func (c *Client) fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: nhl: %v", screamsheet.ErrDataUnavailable, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: nhl: %v", screamsheet.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: nhl: unexpected status %d", screamsheet.ErrDataUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: nhl: %v", screamsheet.ErrDataUnavailable, err)
	}
	return nil
}
