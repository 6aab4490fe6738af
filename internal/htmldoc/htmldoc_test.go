package htmldoc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "emphasis",
			source: "Brought to you by **the house**.",
			want:   "<strong>the house</strong>",
		},
		{
			name:   "gfm strikethrough",
			source: "~~old~~ new",
			want:   "<del>old</del>",
		},
		{
			name:   "autolink",
			source: "see https://example.com",
			want:   `<a href="https://example.com"`,
		},
		{
			name:   "raw html suppressed",
			source: "<script>alert(1)</script>",
			want:   "<!-- raw HTML omitted -->",
		},
	}

	c := NewConverter()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ToHTML(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestToHTMLCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConverter().ToHTML(ctx, "# hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDocument(t *testing.T) {
	t.Parallel()

	t.Run("wraps body in full shell", func(t *testing.T) {
		t.Parallel()
		doc := Document("MLB Scream Sheet", "<h1>hi</h1>", "body{margin:0}")
		for _, want := range []string{
			"<!DOCTYPE html>",
			"<meta charset=\"utf-8\">",
			"<title>MLB Scream Sheet</title>",
			"<style>body{margin:0}</style>",
			"<h1>hi</h1>",
			"</html>",
		} {
			if !strings.Contains(doc, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("empty css falls back to built-in stylesheet", func(t *testing.T) {
		t.Parallel()
		doc := Document("T", "", "")
		if !strings.Contains(doc, "@page") {
			t.Errorf("document missing built-in stylesheet")
		}
	})

	t.Run("title is escaped", func(t *testing.T) {
		t.Parallel()
		doc := Document("<b>T</b>", "", "x{}")
		if !strings.Contains(doc, "<title>&lt;b&gt;T&lt;/b&gt;</title>") {
			t.Errorf("title not escaped:\n%s", doc)
		}
	})

	t.Run("css cannot close the style block", func(t *testing.T) {
		t.Parallel()
		doc := Document("T", "", "x{}</style><script>")
		if strings.Contains(doc, "</style><script>") {
			t.Errorf("style block escape not sanitized:\n%s", doc)
		}
	})
}

func TestDefaultCSSEmbedded(t *testing.T) {
	t.Parallel()

	if !strings.Contains(DefaultCSS, "@page") {
		t.Errorf("built-in stylesheet missing page rules")
	}
}
