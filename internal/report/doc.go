// Package report turns raw audit state into deliverable reports.
//
// The Assemble function filters and orders recorded observations into a
// ReportDocument. Writers then render that document in various formats:
//   - JSONWriter for tool integration and re-import
//   - HTMLWriter for a standalone, client-ready web document
//   - MarkdownWriter for documentation and sharing
//
// PDF output reuses the HTML rendering; see the pdf package.
//
// Design decision: Assembly and rendering are separate steps so every
// output format works from the same filtered document and cannot drift
// in which observations they include.
package report
