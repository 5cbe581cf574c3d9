package report

// Meta identifies who performed the evaluation and against which standard.
// It appears in the scope section of rendered reports.
type Meta struct {
	// Evaluator is the organization that performed the audit.
	Evaluator string

	// WCAGVersion is the guideline version evaluated against, e.g. "2.2".
	WCAGVersion string

	// ConformanceTarget is the targeted conformance level, e.g. "AA".
	ConformanceTarget string
}

// DefaultMeta returns the evaluation metadata used when no configuration
// overrides it.
func DefaultMeta() Meta {
	return Meta{
		Evaluator:         "Stormfors",
		WCAGVersion:       "2.2",
		ConformanceTarget: "AA",
	}
}
