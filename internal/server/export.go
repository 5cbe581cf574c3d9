package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stormfors/wcag-audit/internal/catalog"
	"github.com/stormfors/wcag-audit/internal/report"
)

// handleExport streams the assembled report as a file download.
// The report is rendered into a buffer before any response byte is sent,
// so a failing render (a missing Chrome binary for PDF, typically)
// surfaces as a clean error response instead of a truncated download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	st, variant, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	state := st.Snapshot()
	doc := report.Assemble(state, catalog.ForVariant(variant))
	meta := s.cfg.ReportMeta()

	var buf bytes.Buffer
	var ext, contentType string

	format := chi.URLParam(r, "format")
	switch format {
	case "json":
		ext, contentType = "json", "application/json; charset=utf-8"
		_, err = report.NewJSONWriter(&buf, report.WithPrettyPrint()).Write(doc)
	case "html":
		ext, contentType = "html", "text/html; charset=utf-8"
		_, err = report.NewHTMLWriter(&buf, report.WithMeta(meta)).Write(doc)
	case "markdown", "md":
		ext, contentType = "md", "text/markdown; charset=utf-8"
		_, err = report.NewMarkdownWriter(&buf, report.WithMarkdownMeta(meta)).Write(doc)
	case "pdf":
		ext, contentType = "pdf", "application/pdf"
		err = s.pdfGen.Render(r.Context(), doc, &buf)
	default:
		respondError(w, http.StatusNotFound, fmt.Errorf("unknown export format %q", format))
		return
	}
	if err != nil {
		s.logger.Error("report export failed",
			"variant", variant.String(),
			"format", format,
			"error", err)
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	filename := report.ExportFilename(state.ClientName, state.DateCreated, ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
