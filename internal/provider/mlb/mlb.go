// Package mlb adapts the MLB Stats API (statsapi.mlb.com) to the
// screamsheet provider contracts.
package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

const defaultBaseURL = "https://statsapi.mlb.com"

// Client fetches MLB scores and standings.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// TeamID restricts Scores to one team's games when non-zero.
	TeamID int
	// Season overrides the standings season; zero means the current year.
	Season int
}

// New creates a Client with the given fetch timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type scheduleResponse struct {
	Dates []struct {
		Games []struct {
			GameDate string `json:"gameDate"`
			Status   struct {
				DetailedState string `json:"detailedState"`
			} `json:"status"`
			Teams struct {
				Away scheduleSide `json:"away"`
				Home scheduleSide `json:"home"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

type scheduleSide struct {
	Score *int `json:"score"`
	Team  struct {
		Name string `json:"name"`
	} `json:"team"`
}

// Scores returns every MLB game for the given date. Scheduled games
// with no score yet come back with Played=false.
func (c *Client) Scores(ctx context.Context, date time.Time) ([]screamsheet.GameResult, error) {
	day := date.Format("2006-01-02")
	url := fmt.Sprintf("%s/api/v1/schedule?sportId=1&startDate=%s&endDate=%s", c.BaseURL, day, day)
	if c.TeamID != 0 {
		url += "&teamId=" + strconv.Itoa(c.TeamID)
	}

	var resp scheduleResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	games := []screamsheet.GameResult{}
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			start, _ := time.Parse(time.RFC3339, g.GameDate)
			result := screamsheet.GameResult{
				Start:    start,
				AwayTeam: g.Teams.Away.Team.Name,
				HomeTeam: g.Teams.Home.Team.Name,
				Status:   g.Status.DetailedState,
			}
			if g.Teams.Away.Score != nil && g.Teams.Home.Score != nil {
				result.AwayScore = *g.Teams.Away.Score
				result.HomeScore = *g.Teams.Home.Score
				result.Played = true
			}
			games = append(games, result)
		}
	}
	return games, nil
}

type divisionsResponse struct {
	Divisions []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"divisions"`
}

type standingsResponse struct {
	Records []struct {
		Division struct {
			ID int `json:"id"`
		} `json:"division"`
		TeamRecords []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
			LeagueRecord struct {
				Wins   int    `json:"wins"`
				Losses int    `json:"losses"`
				Pct    string `json:"pct"`
			} `json:"leagueRecord"`
			DivisionRank string `json:"divisionRank"`
		} `json:"teamRecords"`
	} `json:"records"`
}

// Standings returns the league table for both leagues, ordered the way
// the API reports divisions, teams ranked within each division.
func (c *Client) Standings(ctx context.Context) ([]screamsheet.StandingRow, error) {
	// One divisions call replaces the per-record division link lookups;
	// two requests total, same result.
	var divs divisionsResponse
	if err := c.fetch(ctx, c.BaseURL+"/api/v1/divisions?sportId=1", &divs); err != nil {
		return nil, err
	}
	divNames := make(map[int]string, len(divs.Divisions))
	for _, d := range divs.Divisions {
		divNames[d.ID] = d.Name
	}

	season := c.Season
	if season == 0 {
		season = time.Now().Year()
	}
	url := fmt.Sprintf("%s/api/v1/standings?season=%d&leagueId=103,104", c.BaseURL, season)

	var resp standingsResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	rows := []screamsheet.StandingRow{}
	for _, record := range resp.Records {
		division := divNames[record.Division.ID]
		if division == "" {
			division = "Unknown Division"
		}
		for _, team := range record.TeamRecords {
			rank, _ := strconv.Atoi(team.DivisionRank)
			rows = append(rows, screamsheet.StandingRow{
				Division: division,
				Team:     team.Team.Name,
				Wins:     team.LeagueRecord.Wins,
				Losses:   team.LeagueRecord.Losses,
				Pct:      team.LeagueRecord.Pct,
				Rank:     rank,
			})
		}
	}
	return rows, nil
}

func (c *Client) fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: mlb: %v", screamsheet.ErrDataUnavailable, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: mlb: %v", screamsheet.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: mlb: unexpected status %d", screamsheet.ErrDataUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: mlb: %v", screamsheet.ErrDataUnavailable, err)
	}
	return nil
}
