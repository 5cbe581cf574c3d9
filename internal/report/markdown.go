package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/stormfors/wcag-audit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// meta identifies the evaluator and target standard in the report.
	meta Meta
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownMeta overrides the evaluation metadata shown in the report.
func WithMarkdownMeta(meta Meta) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.meta = meta
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		meta:       DefaultMeta(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(doc *model.ReportDocument) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, doc)
	w.writeScope(md, doc)
	w.writeSummary(md, doc)
	w.writeObservations(md, doc)
	w.writeOtherFindings(md, doc)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and evaluation context.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, doc *model.ReportDocument) {
	md.H1("WCAG Accessibility Audit Report")
	md.PlainText("")
	md.PlainTextf(
		"The aim of this audit is to evaluate the conformance of %s with W3C's Web Content Accessibility Guidelines (WCAG) %s at level %s and the European Accessibility Act.",
		doc.ClientName, w.meta.WCAGVersion, w.meta.ConformanceTarget,
	)
	md.PlainText("")
}

// writeScope writes the evaluation scope table.
func (w *MarkdownWriter) writeScope(md *markdown.Markdown, doc *model.ReportDocument) {
	md.H2("Scope of the Evaluation")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Website Name", doc.ClientName},
			{"Client ID", doc.ClientID},
			{"Evaluation Date", doc.DateCreated.Format("2006-01-02")},
			{"WCAG Version", w.meta.WCAGVersion},
			{"Conformance Target", w.meta.ConformanceTarget},
			{"Evaluation By", w.meta.Evaluator},
			{"Pages Evaluated", strconv.Itoa(len(doc.Sections))},
			{"Observations", strconv.Itoa(doc.TotalObservations())},
		},
	})
	md.PlainText("")
}

// writeSummary writes the executive summary section when one was recorded.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, doc *model.ReportDocument) {
	if doc.ExecutiveSummary == "" {
		return
	}
	md.H2("Executive Summary")
	md.PlainText("")
	md.PlainText(doc.ExecutiveSummary)
	md.PlainText("")
}

// writeObservations writes the per-page observation sections.
func (w *MarkdownWriter) writeObservations(md *markdown.Markdown, doc *model.ReportDocument) {
	md.H2("Observations")
	md.PlainText("")

	if !doc.HasFindings() {
		md.Note("No observations were recorded for this audit.")
		md.PlainText("")
		return
	}

	for _, section := range doc.Sections {
		md.H3(section.URL)
		md.PlainText("")
		for _, obs := range section.Observations {
			title := obs.Criterion
			if obs.Level != "" {
				title += " (Level " + obs.Level + ")"
			}
			md.H4(title)
			md.PlainText("")
			if obs.Description != "" {
				md.PlainText(markdown.Italic(obs.Description))
				md.PlainText("")
			}
			md.PlainText(obs.Observation)
			md.PlainText("")
		}
	}
}

// writeOtherFindings writes the free-form findings section when present.
func (w *MarkdownWriter) writeOtherFindings(md *markdown.Markdown, doc *model.ReportDocument) {
	if doc.OtherFindings == "" {
		return
	}
	md.H2("Other Findings")
	md.PlainText("")
	md.PlainText(doc.OtherFindings)
	md.PlainText("")
}
