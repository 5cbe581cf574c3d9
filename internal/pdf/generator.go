package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/report"
)

// Generator renders audit reports to PDF via headless Chrome.
type Generator struct {
	// meta identifies the evaluator and target standard in the report.
	meta report.Meta

	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMeta overrides the evaluation metadata shown in the report.
func WithMeta(meta report.Meta) GeneratorOption {
	return func(g *Generator) {
		g.meta = meta
	}
}

// WithLogger sets the logger used for progress and cleanup warnings.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a PDF generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		meta:   report.DefaultMeta(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Render writes the report as a PDF document to out.
//
// The report is rendered to HTML, captured in headless Chrome, sliced
// into A4 pages, and assembled with pdfcpu. Any stage failing aborts the
// export; no partial PDF is written to out before assembly succeeds.
func (g *Generator) Render(ctx context.Context, doc *model.ReportDocument, out io.Writer) error {
	var htmlBuf bytes.Buffer
	if _, err := report.NewHTMLWriter(&htmlBuf, report.WithMeta(g.meta)).Write(doc); err != nil {
		return fmt.Errorf("failed to render report HTML: %w", err)
	}

	htmlPath, err := writeTempHTML(htmlBuf.Bytes())
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(htmlPath); err != nil {
			g.logger.Warn("failed to remove temporary report file",
				"path", htmlPath,
				"error", err)
		}
	}()

	g.logger.Debug("capturing report in headless chrome", "path", htmlPath)
	screenshot, err := captureScreenshot(ctx, htmlPath)
	if err != nil {
		return err
	}

	pages, err := paginate(screenshot)
	if err != nil {
		return err
	}
	g.logger.Debug("assembling pdf", "pages", len(pages))

	return buildPDF(out, pages)
}

// buildPDF assembles page images into a PDF, one image per A4 page.
func buildPDF(out io.Writer, pages [][]byte) error {
	imp, err := pdfcpu.ParseImportDetails("form:A4, pos:full, scalefactor:1.0", types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to configure pdf import: %w", err)
	}

	readers := make([]io.Reader, len(pages))
	for i, page := range pages {
		readers[i] = bytes.NewReader(page)
	}

	if err := api.ImportImages(nil, out, readers, imp, nil); err != nil {
		return fmt.Errorf("failed to assemble pdf: %w", err)
	}
	return nil
}
