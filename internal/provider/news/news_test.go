package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

func rssDocument(items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<rss version="2.0"><channel><title>Test Feed</title>`)
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func rssItem(title, link, description string) string {
	return fmt.Sprintf(
		"<item><title>%s</title><link>%s</link><description>%s</description>"+
			"<pubDate>Sun, 30 Aug 2026 12:00:00 GMT</pubDate></item>",
		title, link, description)
}

func newTestFeed(t *testing.T, favorites []string, items ...string) *Feed {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssDocument(items...)))
	}))
	t.Cleanup(srv.Close)

	f := MLBTradeRumors(favorites)
	f.URL = srv.URL
	return f
}

func titles(articles []screamsheet.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func TestArticlesSlotting(t *testing.T) {
	t.Parallel()

	t.Run("favorite teams reserve slots in order", func(t *testing.T) {
		t.Parallel()
		f := newTestFeed(t, []string{"Phillies", "Padres"},
			rssItem("League Roundup", "https://e/1", "General news."),
			rssItem("Padres Acquire Reliever", "https://e/2", "Bullpen move."),
			rssItem("Another General Story", "https://e/3", "More news."),
			rssItem("Phillies Call Up Prospect", "https://e/4", "Roster move."),
		)

		articles, err := f.Articles(context.Background(), 4)
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		got := titles(articles)
		want := []string{
			"League Roundup",            // newest general item
			"Phillies Call Up Prospect", // first favorite's slot
			"Padres Acquire Reliever",   // second favorite's slot
			"Another General Story",     // backfill
		}
		if len(got) != len(want) {
			t.Fatalf("titles = %v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("slot %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("team slot without a match backfills with general items", func(t *testing.T) {
		t.Parallel()
		f := newTestFeed(t, []string{"Yankees"},
			rssItem("Story One", "https://e/1", "x"),
			rssItem("Story Two", "https://e/2", "x"),
		)

		articles, err := f.Articles(context.Background(), 3)
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		got := titles(articles)
		if len(got) != 2 || got[0] != "Story One" || got[1] != "Story Two" {
			t.Errorf("titles = %v", got)
		}
	})

	t.Run("promotional items are excluded", func(t *testing.T) {
		t.Parallel()
		f := newTestFeed(t, nil,
			rssItem("MLBTR Chat Transcript", "https://e/1", "chat"),
			rssItem("Subscribe To Our Podcast", "https://e/2", "promo"),
			rssItem("Actual News Item", "https://e/3", "news"),
		)

		articles, err := f.Articles(context.Background(), 4)
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		got := titles(articles)
		if len(got) != 1 || got[0] != "Actual News Item" {
			t.Errorf("titles = %v", got)
		}
	})

	t.Run("result capped at max", func(t *testing.T) {
		t.Parallel()
		f := newTestFeed(t, nil,
			rssItem("A", "https://e/1", "x"),
			rssItem("B", "https://e/2", "x"),
			rssItem("C", "https://e/3", "x"),
		)

		articles, err := f.Articles(context.Background(), 2)
		if err != nil {
			t.Fatalf("Articles: %v", err)
		}
		if len(articles) != 2 {
			t.Errorf("articles = %v", titles(articles))
		}
	})

	t.Run("unreachable feed wraps ErrDataUnavailable", func(t *testing.T) {
		t.Parallel()
		f := MLBTradeRumors(nil)
		f.URL = "http://127.0.0.1:1/feed"
		if _, err := f.Articles(context.Background(), 4); !errors.Is(err, screamsheet.ErrDataUnavailable) {
			t.Errorf("error = %v, want ErrDataUnavailable", err)
		}
	})
}

func TestArticleFields(t *testing.T) {
	t.Parallel()

	f := newTestFeed(t, nil,
		rssItem("Headline", "https://example.com/story",
			"&lt;p&gt;First sentence.&lt;/p&gt; &lt;a href='x'&gt;Second&lt;/a&gt;   sentence."),
	)

	articles, err := f.Articles(context.Background(), 1)
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("articles = %v", titles(articles))
	}
	a := articles[0]
	if a.Link != "https://example.com/story" {
		t.Errorf("link = %q", a.Link)
	}
	if a.Summary != "First sentence. Second sentence." {
		t.Errorf("summary = %q", a.Summary)
	}
	if a.Published.IsZero() {
		t.Error("published date not parsed")
	}
}

func TestCleanSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips tags and collapses whitespace",
			in:   "<p>Hello\n  <b>world</b></p>",
			want: "Hello world",
		},
		{
			name: "unescapes entities",
			in:   "Fish &amp; chips",
			want: "Fish & chips",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanSummary(tt.in); got != tt.want {
				t.Errorf("cleanSummary = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("long text truncates at a word boundary", func(t *testing.T) {
		t.Parallel()
		in := strings.Repeat("word ", 200)
		got := cleanSummary(in)
		if len(got) > summaryLimit+len("…") {
			t.Errorf("summary too long: %d", len(got))
		}
		if !strings.HasSuffix(got, "…") {
			t.Errorf("summary missing ellipsis: %q", got)
		}
		if strings.HasSuffix(strings.TrimSuffix(got, "…"), " ") {
			t.Errorf("summary ends mid-boundary: %q", got)
		}
	})
}
