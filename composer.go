package screamsheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pmartinson/go-screamsheet/internal/htmldoc"
	"github.com/pmartinson/go-screamsheet/internal/pdf"
)

// PDFConverter abstracts the HTML-to-PDF step so sheets can be generated
// in tests without a browser.
type PDFConverter interface {
	ToPDF(htmlContent, outputPath string) error
}

// Screamsheet composes an ordered list of sections into one PDF report.
//
// Section order is print order. Generate is called exactly once per
// instance; the sheet is terminal afterwards, success or not.
type Screamsheet struct {
	title      string
	outputPath string
	reportDate time.Time
	sections   []Section

	css           string
	masthead      string
	renderTimeout time.Duration
	converter     PDFConverter
	md            markdownConverter
	onFault       func(section string, err error)

	generated bool
}

// Option configures a Screamsheet.
type Option func(*Screamsheet)

// WithCSS replaces the built-in print stylesheet.
func WithCSS(css string) Option {
	return func(s *Screamsheet) { s.css = css }
}

// WithMasthead adds an operator-authored markdown note at the bottom of
// the sheet.
func WithMasthead(source string) Option {
	return func(s *Screamsheet) { s.masthead = source }
}

// WithPDFConverter replaces the headless-Chrome converter.
func WithPDFConverter(c PDFConverter) Option {
	return func(s *Screamsheet) { s.converter = c }
}

// WithRenderTimeout bounds the Chrome page load and render.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithRenderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("screamsheet: WithRenderTimeout duration must be positive")
	}
	return func(s *Screamsheet) { s.renderTimeout = d }
}

// New creates a sheet with its sections wired in. Construction performs
// no I/O; all fetching happens in Generate.
func New(title, outputPath string, reportDate time.Time, sections []Section, opts ...Option) *Screamsheet {
	s := &Screamsheet{
		title:      title,
		outputPath: outputPath,
		reportDate: reportDate,
		sections:   sections,
		md:         htmldoc.NewConverter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Title returns the sheet's banner title.
func (s *Screamsheet) Title() string { return s.title }

// OutputPath returns where Generate writes the PDF.
func (s *Screamsheet) OutputPath() string { return s.outputPath }

// OnSectionFault registers a hook invoked once per degraded section
// (fetch or render failure). The batch runner uses it to record
// warnings in the run log.
func (s *Screamsheet) OnSectionFault(fn func(section string, err error)) {
	s.onFault = fn
}

// Generate fetches and renders every section in order, assembles one
// HTML document, and writes it as a PDF to the output path.
//
// A section fault degrades that section to a placeholder and is
// reported through OnSectionFault; it never fails the sheet. Generate
// returns an error only for document-level faults: invalid
// construction, cancellation, or failure to render or write the PDF.
func (s *Screamsheet) Generate(ctx context.Context) error {
	if s.generated {
		return ErrAlreadyGenerated
	}
	if s.outputPath == "" {
		return ErrEmptyOutputPath
	}
	if len(s.sections) == 0 {
		return ErrNoSections
	}
	s.generated = true

	var body strings.Builder
	head := []Fragment{
		Heading{Level: 1, Text: s.title},
		Paragraph{Text: s.reportDate.Format("Monday, January 2, 2006"), Class: "subtitle"},
	}
	for _, f := range head {
		if err := f.appendHTML(ctx, &body, s.md); err != nil {
			return fmt.Errorf("%w: %w", ErrDocumentWrite, err)
		}
	}

	for _, sec := range s.sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fetchSection(ctx, sec); err != nil {
			s.sectionFault(sec.Title(), err)
		}
		html, err := s.renderSection(ctx, sec)
		if err != nil {
			s.sectionFault(sec.Title(), err)
			html = placeholderHTML(sec.Title())
		}
		body.WriteString(html)
	}

	if s.masthead != "" {
		var mb strings.Builder
		mb.WriteString("<div class=\"masthead\">\n")
		if err := (Markdown{Source: s.masthead}).appendHTML(ctx, &mb, s.md); err != nil {
			s.sectionFault("masthead", err)
		} else {
			mb.WriteString("</div>\n")
			body.WriteString(mb.String())
		}
	}

	doc := htmldoc.Document(s.title, body.String(), s.css)

	conv := s.converter
	if conv == nil {
		conv = pdf.NewConverter(s.renderTimeout)
	}
	if err := conv.ToPDF(doc, s.outputPath); err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentWrite, err)
	}
	return nil
}

// fetchSection calls the section's Fetch with the same panic
// containment renderSection has, so a provider panic degrades that
// section instead of killing the run.
func fetchSection(ctx context.Context, sec Section) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: panic: %v", ErrDataUnavailable, sec.Title(), r)
		}
	}()
	return sec.Fetch(ctx)
}

// renderSection builds one section's HTML contribution. A panic inside
// the section's Fragments is contained here and surfaced as a render
// fault, keeping one bad section from taking down the document.
func (s *Screamsheet) renderSection(ctx context.Context, sec Section) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrSectionRender, sec.Title(), r)
		}
	}()

	frags := sec.Fragments()
	if len(frags) == 0 {
		frags = []Fragment{Heading{Level: 2, Text: sec.Title()}, Unavailable{What: sec.Title()}}
	}

	var b strings.Builder
	for _, f := range frags {
		if err := f.appendHTML(ctx, &b, s.md); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrSectionRender, sec.Title(), err)
		}
	}
	return b.String(), nil
}

func (s *Screamsheet) sectionFault(section string, err error) {
	if s.onFault != nil {
		s.onFault(section, err)
	}
}

// placeholderHTML is the fallback contribution for a section whose
// render failed outright. Fragment assembly for these two fragment
// kinds cannot fail.
func placeholderHTML(title string) string {
	var b strings.Builder
	_ = Heading{Level: 2, Text: title}.appendHTML(context.Background(), &b, nil)
	_ = Unavailable{What: title}.appendHTML(context.Background(), &b, nil)
	return b.String()
}
