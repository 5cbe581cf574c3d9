package model

import "time"

// ReportDocument is the derived, export-ready report structure.
// It is constructed fresh on each export from an AuditState snapshot plus
// the criterion catalog, holds no references back into the state, and is
// discarded after the export completes.
//
// Design decision: Field order here is load-bearing. encoding/json emits
// struct fields in declaration order, and the JSON exporter promises
// byte-identical output for identical input, so the declaration order is
// the stable key order of the export format.
type ReportDocument struct {
	// ClientName is copied verbatim from the audit state.
	ClientName string `json:"clientName"`

	// ClientID is copied verbatim from the audit state.
	ClientID string `json:"clientId"`

	// DateCreated is when the audit session was created.
	DateCreated time.Time `json:"dateCreated"`

	// ExecutiveSummary is the auditor's summary, copied verbatim.
	ExecutiveSummary string `json:"executiveSummary"`

	// OtherFindings holds findings outside the criterion list (in-depth only).
	OtherFindings string `json:"otherFindings,omitempty"`

	// Sections holds one entry per URL with at least one non-blank
	// observation, in URL insertion order. A URL whose observations are all
	// blank is omitted entirely.
	Sections []ReportSection `json:"observations"`
}

// ReportSection groups the observation records for one URL under test.
type ReportSection struct {
	// URL is the page the observations apply to.
	URL string `json:"url"`

	// Observations are the kept records for this URL in catalog order.
	Observations []ObservationRecord `json:"observations"`
}

// ObservationRecord is one criterion's finding, joined with catalog metadata.
type ObservationRecord struct {
	// Criterion is the catalog display name, or the raw key when the
	// catalog has no matching entry.
	Criterion string `json:"criterion"`

	// Observation is the auditor's text. Never blank: records whose text
	// trims to empty are dropped by the assembler.
	Observation string `json:"observation"`

	// Category is the WCAG principle (Perceivable, Operable, Understandable,
	// Robust), or "" for basic checklist items.
	Category string `json:"category"`

	// Level is the conformance level tag (A, AA), or "".
	Level string `json:"level"`

	// Description is the catalog's plain-language criterion description,
	// or a generic fallback when the criterion is unknown.
	Description string `json:"description"`
}

// TotalObservations returns the number of observation records across all
// sections. Exporters use it to render an explicit "no findings" notice
// instead of an empty listing.
func (d *ReportDocument) TotalObservations() int {
	var n int
	for _, s := range d.Sections {
		n += len(s.Observations)
	}
	return n
}

// HasFindings reports whether the document contains any observations.
func (d *ReportDocument) HasFindings() bool {
	return d.TotalObservations() > 0
}
