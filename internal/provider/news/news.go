// Package news adapts RSS feeds to the screamsheet article provider
// contract, with promotional-post filtering and favorite-team slot
// prioritization.
package news

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

// Posts matching any of these are recurring promotional items, not
// news, and are dropped before slotting.
var exclusionKeywords = []string{
	"Top 50", "Contest", "Prediction", "Subscribers", "Email List",
	"Presents Our", "Podcast", "Live Chat", "Q&A", "Ask Us Anything",
	"Best of", "MLBTR Chat", "Front Office",
}

const summaryLimit = 500

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Feed fetches and ranks articles from a single RSS source.
type Feed struct {
	URL           string
	FavoriteTeams []string

	parser *gofeed.Parser
}

// MLBTradeRumors returns a Feed for the MLB Trade Rumors RSS feed.
// Favorite teams, in priority order, each reserve one article slot.
func MLBTradeRumors(favorites []string) *Feed {
	return newFeed("https://feeds.feedburner.com/MlbTradeRumors", favorites)
}

// PlayersTribune returns a Feed for The Players' Tribune.
func PlayersTribune() *Feed {
	return newFeed("https://www.theplayerstribune.com/feed", nil)
}

// FanGraphs returns a Feed for the FanGraphs blog.
func FanGraphs() *Feed {
	return newFeed("https://www.fangraphs.com/feed", nil)
}

func newFeed(url string, favorites []string) *Feed {
	return &Feed{
		URL:           url,
		FavoriteTeams: favorites,
		parser:        gofeed.NewParser(),
	}
}

// Articles fetches the feed and returns up to max entries.
//
// Slot 0 always holds the newest general item. Each favorite team, in
// order, reserves the next slot for that team's newest headline match.
// Slots whose team has no current headline fall back to general items.
func (f *Feed) Articles(ctx context.Context, max int) ([]screamsheet.Article, error) {
	feed, err := f.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: news: %v", screamsheet.ErrDataUnavailable, err)
	}

	var clean []*gofeed.Item
	for _, item := range feed.Items {
		if !isPromotional(item) {
			clean = append(clean, item)
		}
	}

	if max < 1 {
		max = 1
	}
	selection := make([]*gofeed.Item, max)
	selected := map[string]bool{}

	for i, team := range f.FavoriteTeams {
		slot := i + 1
		if slot >= max {
			break
		}
		for _, item := range clean {
			if !selected[item.Link] && strings.Contains(item.Title, team) {
				selection[slot] = item
				selected[item.Link] = true
				break
			}
		}
	}

	next := 0
	for slot := range selection {
		if selection[slot] != nil {
			continue
		}
		for next < len(clean) && selected[clean[next].Link] {
			next++
		}
		if next >= len(clean) {
			break
		}
		selection[slot] = clean[next]
		selected[clean[next].Link] = true
	}

	articles := []screamsheet.Article{}
	for _, item := range selection {
		if item == nil {
			continue
		}
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}
		articles = append(articles, screamsheet.Article{
			Title:     item.Title,
			Link:      item.Link,
			Summary:   cleanSummary(item.Description),
			Published: published,
		})
	}
	return articles, nil
}

func isPromotional(item *gofeed.Item) bool {
	title := strings.ToLower(item.Title)
	summary := strings.ToLower(item.Description)
	for _, keyword := range exclusionKeywords {
		k := strings.ToLower(keyword)
		if strings.Contains(title, k) || strings.Contains(summary, k) {
			return true
		}
	}
	return false
}

// cleanSummary strips markup from a feed description and truncates it
// at a word boundary so it fits an article block on the page.
func cleanSummary(description string) string {
	text := tagPattern.ReplaceAllString(description, "")
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= summaryLimit {
		return text
	}
	cut := strings.LastIndex(text[:summaryLimit], " ")
	if cut <= 0 {
		cut = summaryLimit
	}
	return text[:cut] + "…"
}
