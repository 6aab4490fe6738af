// Package pdf renders HTML to a PDF file using headless Chrome via
// go-rod. The output file is written atomically: a complete PDF appears
// at the target path or nothing does.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/pmartinson/go-screamsheet/internal/fileutil"
)

// Sentinel errors for PDF conversion failures.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

// Page dimensions in inches (US Letter).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5

	// DefaultTimeout bounds a single page load and render.
	DefaultTimeout = 30 * time.Second
)

// Renderer abstracts PDF rendering from an HTML file so the converter
// can be tested without a browser.
type Renderer interface {
	RenderFromFile(filePath string) ([]byte, error)
}

// RodRenderer implements Renderer using go-rod. Rod downloads a managed
// Chromium on first run if none is found.
type RodRenderer struct {
	Timeout time.Duration
}

// RenderFromFile opens a local HTML file in headless Chrome and renders
// it to PDF bytes.
func (r *RodRenderer) RenderFromFile(filePath string) ([]byte, error) {
	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.Timeout(r.Timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

func floatPtr(v float64) *float64 {
	return &v
}

// Converter converts HTML content to a PDF file.
type Converter struct {
	Renderer Renderer
}

// NewConverter creates a Converter backed by headless Chrome with the
// given render timeout (DefaultTimeout when zero).
func NewConverter(timeout time.Duration) *Converter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Converter{Renderer: &RodRenderer{Timeout: timeout}}
}

// NewConverterWith creates a Converter with a custom renderer (tests).
func NewConverterWith(renderer Renderer) *Converter {
	if renderer == nil {
		panic("nil Renderer in NewConverterWith")
	}
	return &Converter{Renderer: renderer}
}

// ToPDF renders htmlContent and writes the result to outputPath.
// The write goes through a temp file in the same directory followed by a
// rename, so a failure never leaves a partial PDF behind.
func (c *Converter) ToPDF(htmlContent, outputPath string) error {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	pdfBuf, err := c.Renderer.RenderFromFile(tmpPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	out, err := os.CreateTemp(dir, ".screamsheet-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	partial := out.Name()

	if _, err := out.Write(pdfBuf); err != nil {
		_ = out.Close()
		_ = os.Remove(partial)
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	// #nosec G302 -- PDFs are meant to be readable
	if err := os.Chmod(partial, 0o644); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	if err := os.Rename(partial, outputPath); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return nil
}
