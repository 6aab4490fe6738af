package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pmartinson/go-screamsheet/internal/config"
)

var rosterDate = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func TestBuildRoster(t *testing.T) {
	t.Parallel()

	entries, err := buildRoster(config.DefaultConfig(), rosterDate, "out")
	if err != nil {
		t.Fatalf("buildRoster: %v", err)
	}

	wantLabels := []string{"MLB", "NHL", "NBA", "NewsDigest"}
	if len(entries) != len(wantLabels) {
		t.Fatalf("entries = %d, want %d", len(entries), len(wantLabels))
	}
	for i, want := range wantLabels {
		if entries[i].Label != want {
			t.Errorf("entry %d label = %q, want %q", i, entries[i].Label, want)
		}
	}

	if want := filepath.Join("out", "MLB_Scream_Sheet_20260830.pdf"); entries[0].OutputPath != want {
		t.Errorf("MLB output = %q, want %q", entries[0].OutputPath, want)
	}
	if want := filepath.Join("out", "News_Scream_Sheet_20260830.pdf"); entries[3].OutputPath != want {
		t.Errorf("news output = %q, want %q", entries[3].OutputPath, want)
	}
}

func TestBuildersWireSheets(t *testing.T) {
	t.Parallel()

	entries, err := buildRoster(config.DefaultConfig(), rosterDate, "out")
	if err != nil {
		t.Fatalf("buildRoster: %v", err)
	}

	wantTitles := []string{"MLB Scream Sheet", "NHL Scream Sheet", "NBA Scream Sheet", "MLB Trade Rumors"}
	for i, entry := range entries {
		sheet, err := entry.Build()
		if err != nil {
			t.Fatalf("%s Build: %v", entry.Label, err)
		}
		if sheet.Title() != wantTitles[i] {
			t.Errorf("%s title = %q, want %q", entry.Label, sheet.Title(), wantTitles[i])
		}
		if sheet.OutputPath() != entry.OutputPath {
			t.Errorf("%s sheet output %q != entry output %q", entry.Label, sheet.OutputPath(), entry.OutputPath)
		}
	}
}

func TestBuildRosterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "unknown mlb team",
			mutate:  func(c *config.Config) { c.MLB.Team = "Philadelphia Athletics" },
			wantErr: config.ErrUnknownTeam,
		},
		{
			name:    "unknown nhl team",
			mutate:  func(c *config.Config) { c.NHL.Team = "Quebec Nordiques" },
			wantErr: config.ErrUnknownTeam,
		},
		{
			name:    "unknown feed",
			mutate:  func(c *config.Config) { c.News.Feed = "teletext" },
			wantErr: config.ErrUnknownFeed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			if _, err := buildRoster(cfg, rosterDate, "out"); !errors.Is(err, tt.wantErr) {
				t.Errorf("buildRoster = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewsEntryFeedVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		feed      string
		wantTitle string
	}{
		{config.FeedMLBTradeRumors, "MLB Trade Rumors"},
		{config.FeedPlayersTribune, "The Players' Tribune"},
		{config.FeedFanGraphs, "FanGraphs"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.feed, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			cfg.News.Feed = tt.feed

			entry, err := newNewsEntry(cfg, rosterDate, "out")
			if err != nil {
				t.Fatalf("newNewsEntry: %v", err)
			}
			sheet, err := entry.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if sheet.Title() != tt.wantTitle {
				t.Errorf("title = %q, want %q", sheet.Title(), tt.wantTitle)
			}
		})
	}
}

func TestSheetPath(t *testing.T) {
	t.Parallel()

	got := sheetPath("/var/reports", "NHL", rosterDate)
	want := "/var/reports/NHL_Scream_Sheet_20260830.pdf"
	if got != want {
		t.Errorf("sheetPath = %q, want %q", got, want)
	}
}
