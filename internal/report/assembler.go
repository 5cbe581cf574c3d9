package report

import (
	"sort"
	"strings"

	"github.com/stormfors/wcag-audit/internal/catalog"
	"github.com/stormfors/wcag-audit/internal/model"
)

// Assemble builds a ReportDocument from audit state.
//
// Pages appear in the order they were added to the audit. Within a page,
// observations follow the catalog's canonical order. Observations whose
// text is empty after trimming are dropped, and pages left with no
// observations are omitted entirely.
//
// Observation keys that no longer resolve in the catalog (state saved
// before a catalog change) are kept with the raw key as the criterion
// label so recorded findings are never silently lost.
func Assemble(state model.AuditState, cat *catalog.Catalog) *model.ReportDocument {
	state.Normalize()

	doc := &model.ReportDocument{
		ClientName:       state.ClientName,
		ClientID:         state.ClientID,
		DateCreated:      state.DateCreated,
		ExecutiveSummary: state.ExecutiveSummary,
		OtherFindings:    state.OtherFindings,
	}

	for _, url := range state.URLs {
		section := assembleSection(url, state.Observations[url], cat)
		if section == nil {
			continue
		}
		doc.Sections = append(doc.Sections, *section)
	}

	return doc
}

// assembleSection builds one page's observation list, or nil when the page
// has no non-empty observations.
func assembleSection(url string, observations map[string]string, cat *catalog.Catalog) *model.ReportSection {
	keys := make([]string, 0, len(observations))
	for key, text := range observations {
		if strings.TrimSpace(text) == "" {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}

	// Catalog order first; unknown keys after, ordered among themselves
	// lexicographically so output is deterministic.
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := cat.Position(keys[i]), cat.Position(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	section := &model.ReportSection{URL: url}
	for _, key := range keys {
		record := model.ObservationRecord{
			Criterion:   key,
			Observation: observations[key],
		}
		if c, ok := cat.Lookup(key); ok {
			record.Criterion = c.DisplayName
			record.Category = c.Category
			record.Level = c.Level
			record.Description = c.Description
		}
		section.Observations = append(section.Observations, record)
	}
	return section
}
