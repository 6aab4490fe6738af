// Package htmldoc builds the standalone HTML document that headless
// Chrome renders to PDF: markdown conversion for authored fragments,
// the HTML5 shell, and stylesheet injection.
package htmldoc

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownConversion indicates goldmark failed on a markdown fragment.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// DefaultCSS is the built-in print stylesheet, tuned for a dense
// single-page letter layout.
//
//go:embed styles/screamsheet.css
var DefaultCSS string

// Converter converts markdown fragment sources to embeddable HTML using
// goldmark (pure Go).
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM extensions and class-based
// syntax highlighting.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe intentionally not used: fragment sources come
			// from config files and feeds, not trusted authors.
		),
	)
	return &Converter{md: md}
}

// ToHTML converts markdown source to an HTML fragment (no document
// shell). Goldmark has no native context support, so conversion runs in
// a goroutine raced against ctx.
func (c *Converter) ToHTML(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Document wraps a body in a complete HTML5 document with the given CSS
// in a <style> block. An empty css falls back to DefaultCSS.
func Document(title, body, css string) string {
	if css == "" {
		css = DefaultCSS
	}
	var b strings.Builder
	b.Grow(len(body) + len(css) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>")
	b.WriteString(sanitizeCSS(css))
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
