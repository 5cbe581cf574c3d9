// Package pdf renders audit reports to PDF.
//
// The pipeline reuses the HTML report rendering end to end: the HTML
// document is loaded in headless Chrome, captured as a full-page
// screenshot, sliced into A4-proportioned pages, and assembled into a
// PDF with pdfcpu.
//
// Design decision: Rendering through Chrome instead of laying out the
// PDF directly guarantees the PDF is pixel-identical to the HTML report
// the client receives, at the cost of requiring a Chrome binary. There
// is no fallback renderer: if Chrome is unavailable the export fails
// with a clear error rather than producing a degraded document.
package pdf
