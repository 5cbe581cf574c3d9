package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/stormfors/wcag-audit/internal/catalog"
	"github.com/stormfors/wcag-audit/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// landingVariant is one audit flow entry on the landing page.
type landingVariant struct {
	Path  string
	Title string
	Count int
}

// auditView is everything the audit form template needs. Observation text
// and done flags are resolved against the selected URL on the Go side so
// the template stays free of map lookups.
type auditView struct {
	Variant      string
	Title        string
	State        model.AuditState
	Groups       []auditGroup
	ShowFindings bool
}

// auditGroup is one titled section of the checklist.
type auditGroup struct {
	Name  string
	Items []auditItem
}

// auditItem is one criterion joined with its state for the selected URL.
type auditItem struct {
	catalog.Criterion
	Observation string
	Completed   bool
}

// handleLanding serves the variant chooser.
func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	view := struct {
		Variants []landingVariant
	}{
		Variants: []landingVariant{
			{
				Path:  "/audit/" + model.VariantBasic.String(),
				Title: model.VariantBasic.Title(),
				Count: catalog.ForVariant(model.VariantBasic).Len(),
			},
			{
				Path:  "/audit/" + model.VariantInDepth.String(),
				Title: model.VariantInDepth.Title(),
				Count: catalog.ForVariant(model.VariantInDepth).Len(),
			},
		},
	}
	s.renderPage(w, "landing.tmpl", view)
}

// handleAuditPage serves the checklist form for one variant.
func (s *Server) handleAuditPage(w http.ResponseWriter, r *http.Request) {
	st, variant, err := s.storeFor(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	state := st.Snapshot()
	view := auditView{
		Variant:      variant.String(),
		Title:        variant.Title(),
		State:        state,
		Groups:       buildGroups(catalog.ForVariant(variant), state),
		ShowFindings: variant == model.VariantInDepth,
	}
	s.renderPage(w, "audit.tmpl", view)
}

// buildGroups sections the catalog for display. The basic catalog uses its
// own group labels; the in-depth catalog sections by WCAG principle, in
// catalog order either way.
func buildGroups(cat *catalog.Catalog, state model.AuditState) []auditGroup {
	joinItems := func(items []catalog.Criterion) []auditItem {
		joined := make([]auditItem, 0, len(items))
		for _, item := range items {
			joined = append(joined, auditItem{
				Criterion:   item,
				Observation: state.Observation(state.SelectedURL, item.ID),
				Completed:   state.Completed(state.SelectedURL, item.ID),
			})
		}
		return joined
	}

	if groups := cat.Groups(); len(groups) > 0 {
		sections := make([]auditGroup, 0, len(groups))
		for _, g := range groups {
			sections = append(sections, auditGroup{Name: g, Items: joinItems(cat.ItemsInGroup(g))})
		}
		return sections
	}

	var sections []auditGroup
	for _, item := range cat.Items() {
		if len(sections) == 0 || sections[len(sections)-1].Name != item.Category {
			sections = append(sections, auditGroup{Name: item.Category})
		}
		last := len(sections) - 1
		sections[last].Items = append(sections[last].Items, auditItem{
			Criterion:   item,
			Observation: state.Observation(state.SelectedURL, item.ID),
			Completed:   state.Completed(state.SelectedURL, item.ID),
		})
	}
	return sections
}

// renderPage executes the named template, logging failures. Template errors
// after the first byte cannot change the status code, so the page renders
// into the response directly and errors are best-effort logged.
func (s *Server) renderPage(w http.ResponseWriter, name string, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, view); err != nil {
		s.logger.Error("page render failed", "template", name, "error", err)
	}
}
