package screamsheet

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// markdownConverter abstracts markdown-to-HTML conversion so fragment
// assembly can be tested without goldmark.
type markdownConverter interface {
	ToHTML(ctx context.Context, source string) (string, error)
}

// Fragment is one renderable unit of a screamsheet: a heading, a table,
// a paragraph. Fragments are layout-engine agnostic; they only know how
// to contribute their HTML to the document body.
type Fragment interface {
	appendHTML(ctx context.Context, b *strings.Builder, md markdownConverter) error
}

// Heading is a section or document heading at levels 1-6.
type Heading struct {
	Level int
	Text  string
}

func (h Heading) appendHTML(_ context.Context, b *strings.Builder, _ markdownConverter) error {
	if h.Level < 1 || h.Level > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidHeadingLvl, h.Level)
	}
	fmt.Fprintf(b, "<h%d>%s</h%d>\n", h.Level, html.EscapeString(h.Text), h.Level)
	return nil
}

// Paragraph is a block of plain text. Text is HTML-escaped; Class is an
// optional CSS class on the <p> element.
type Paragraph struct {
	Text  string
	Class string
}

func (p Paragraph) appendHTML(_ context.Context, b *strings.Builder, _ markdownConverter) error {
	if p.Class != "" {
		fmt.Fprintf(b, "<p class=%q>%s</p>\n", p.Class, html.EscapeString(p.Text))
		return nil
	}
	fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(p.Text))
	return nil
}

// Markdown is a block of markdown source converted through goldmark at
// assembly time. Used for operator-authored content such as the masthead
// note, where formatting belongs in the config, not the code.
type Markdown struct {
	Source string
}

func (m Markdown) appendHTML(ctx context.Context, b *strings.Builder, md markdownConverter) error {
	out, err := md.ToHTML(ctx, m.Source)
	if err != nil {
		return fmt.Errorf("%w: markdown fragment: %v", ErrSectionRender, err)
	}
	b.WriteString(out)
	b.WriteString("\n")
	return nil
}

// Table is a simple grid with an optional caption and header row.
// All cell content is escaped.
type Table struct {
	Caption string
	Header  []string
	Rows    [][]string
	Class   string
}

func (t Table) appendHTML(_ context.Context, b *strings.Builder, _ markdownConverter) error {
	if t.Class != "" {
		fmt.Fprintf(b, "<table class=%q>\n", t.Class)
	} else {
		b.WriteString("<table>\n")
	}
	if t.Caption != "" {
		fmt.Fprintf(b, "<caption>%s</caption>\n", html.EscapeString(t.Caption))
	}
	if len(t.Header) > 0 {
		b.WriteString("<thead><tr>")
		for _, h := range t.Header {
			fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(h))
		}
		b.WriteString("</tr></thead>\n")
	}
	b.WriteString("<tbody>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody></table>\n")
	return nil
}

// Columns lays out its items in a fixed number of CSS columns. The
// scores grid uses three; article lists use two.
type Columns struct {
	Count int
	Items []Fragment
}

func (c Columns) appendHTML(ctx context.Context, b *strings.Builder, md markdownConverter) error {
	count := c.Count
	if count < 1 {
		count = 1
	}
	fmt.Fprintf(b, "<div class=\"columns\" style=\"column-count:%d\">\n", count)
	for _, item := range c.Items {
		b.WriteString("<div class=\"col-item\">\n")
		if err := item.appendHTML(ctx, b, md); err != nil {
			return err
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return nil
}

// Group renders its members in order with no wrapper markup. Used when
// one logical unit (an article, a boxed score) spans several fragments,
// e.g. inside a Columns item.
type Group []Fragment

func (g Group) appendHTML(ctx context.Context, b *strings.Builder, md markdownConverter) error {
	for _, f := range g {
		if err := f.appendHTML(ctx, b, md); err != nil {
			return err
		}
	}
	return nil
}

// Rule is a horizontal separator between sections.
type Rule struct{}

func (Rule) appendHTML(_ context.Context, b *strings.Builder, _ markdownConverter) error {
	b.WriteString("<hr/>\n")
	return nil
}

// Unavailable is the neutral placeholder rendered when a section's data
// could not be fetched. It is always non-empty so a degraded sheet still
// shows every configured section.
type Unavailable struct {
	What string
}

func (u Unavailable) appendHTML(_ context.Context, b *strings.Builder, _ markdownConverter) error {
	what := u.What
	if what == "" {
		what = "Section"
	}
	fmt.Fprintf(b, "<p class=\"unavailable\">%s unavailable.</p>\n", html.EscapeString(what))
	return nil
}
