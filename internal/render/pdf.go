// Package render turns assembled document records into downloadable files.
// Two independent back-ends exist: a PDF printer that goes through a styled
// HTML intermediate, and a DOCX builder that constructs the OOXML document
// element by element. Both must present the same logical structure for the
// same record.
package render

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"formalgen/internal/document"
)

const logoFileName = "bisag_logo.png"

// A4 paper size in inches.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// PDF prints document records to PDF in a headless browser. The browser is
// launched lazily on first use and shared across renders; a stale
// connection is detected and relaunched.
type PDF struct {
	staticDir string

	mu      sync.Mutex
	browser *rod.Browser
}

// NewPDF creates a PDF renderer. staticDir is where the logo asset lives.
func NewPDF(staticDir string) *PDF {
	return &PDF{staticDir: staticDir}
}

// OfficeOrder renders an office order to PDF.
func (p *PDF) OfficeOrder(ctx context.Context, doc document.OfficeOrder) ([]byte, error) {
	html, err := renderOrderHTML(doc)
	if err != nil {
		return nil, err
	}
	return p.print(ctx, html)
}

// Circular renders a circular to PDF. The logo asset, when present, is
// recompressed to JPEG quality 85 before embedding to keep the file small;
// a missing or unreadable logo is simply omitted.
func (p *PDF) Circular(ctx context.Context, doc document.Circular) ([]byte, error) {
	logo, err := logoDataURI(filepath.Join(p.staticDir, logoFileName), true)
	if err != nil {
		logo = ""
	}
	html, err := renderCircularHTML(doc, logo)
	if err != nil {
		return nil, err
	}
	return p.print(ctx, html)
}

func (p *PDF) print(ctx context.Context, html string) ([]byte, error) {
	browser, err := p.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()
	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for page load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        f64(paperWidthIn),
		PaperHeight:       f64(paperHeightIn),
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return pdf, nil
}

// ensureBrowser returns a healthy shared browser, launching or relaunching
// headless Chromium as needed.
func (p *PDF) ensureBrowser() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		if _, err := p.browser.Version(); err == nil {
			return p.browser, nil
		}
		_ = p.browser.Close()
		p.browser = nil
	}

	url, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chromium: %w", err)
	}

	p.browser = browser
	return p.browser, nil
}

// Close shuts down the shared browser, if one was launched.
func (p *PDF) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.browser == nil {
		return nil
	}
	err := p.browser.Close()
	p.browser = nil
	return err
}

func f64(v float64) *float64 { return &v }
