package report

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/stormfors/wcag-audit/internal/model"
)

//go:embed templates/report.tmpl
var reportTemplate string

// HTMLWriter outputs reports as a standalone HTML document suitable for
// sending to the audited client. Styling is inlined so the file has no
// external dependencies.
//
// User-entered text (observations, summary) reaches the template as plain
// strings and is escaped by html/template's contextual escaper. Escaping,
// not stripping, is the contract: audit findings routinely quote element
// names like <label> and must survive verbatim. Line breaks are preserved
// by the template's white-space styling.
type HTMLWriter struct {
	baseWriter

	// meta identifies the evaluator and target standard in the report.
	meta Meta

	tmpl *template.Template
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithMeta overrides the evaluation metadata shown in the report.
func WithMeta(meta Meta) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.meta = meta
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		meta:       DefaultMeta(),
		tmpl:       template.Must(template.New("report").Parse(reportTemplate)),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// htmlReport is the template view of a ReportDocument.
type htmlReport struct {
	ClientName       string
	ClientID         string
	Date             string
	Meta             Meta
	ExecutiveSummary string
	OtherFindings    string
	Sections         []htmlSection
}

type htmlSection struct {
	URL          string
	Observations []htmlObservation
}

type htmlObservation struct {
	Criterion   string
	Level       string
	Description string
	Observation string
}

// Write renders the report as a complete HTML document.
func (w *HTMLWriter) Write(doc *model.ReportDocument) (int, error) {
	view := htmlReport{
		ClientName:       doc.ClientName,
		ClientID:         doc.ClientID,
		Date:             doc.DateCreated.Format("January 2, 2006"),
		Meta:             w.meta,
		ExecutiveSummary: doc.ExecutiveSummary,
		OtherFindings:    doc.OtherFindings,
	}

	for _, section := range doc.Sections {
		hs := htmlSection{URL: section.URL}
		for _, obs := range section.Observations {
			hs.Observations = append(hs.Observations, htmlObservation{
				Criterion:   obs.Criterion,
				Level:       obs.Level,
				Description: obs.Description,
				Observation: obs.Observation,
			})
		}
		view.Sections = append(view.Sections, hs)
	}

	counter := &countingWriter{w: w.output}
	if err := w.tmpl.Execute(counter, view); err != nil {
		return counter.n, err
	}
	return counter.n, nil
}

// countingWriter tracks bytes written through template execution.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
