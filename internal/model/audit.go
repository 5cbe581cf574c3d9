package model

import "time"

// AuditState is the single audit-in-progress for one variant.
// It is the source of truth the UI reads from and writes to; the store
// package serializes the whole struct to durable storage on every mutation.
//
// Design decision: We use one flat struct rather than splitting client info,
// observations, and summary into sub-structs because the persisted layout is
// a single JSON blob with exactly these fields, and keeping the struct shape
// identical to the wire shape makes the tolerant load path trivial.
type AuditState struct {
	// ClientName is the client's website name or URL. Free text, may be empty.
	ClientName string `json:"clientName"`

	// ClientID is the client identifier. Free text, may be empty.
	ClientID string `json:"clientId"`

	// Observations maps URL -> criterion key -> free-text observation.
	// Absent entries are treated as empty strings.
	Observations map[string]map[string]string `json:"observations"`

	// CompletedItems maps URL -> criterion key -> done flag, default false.
	CompletedItems map[string]map[string]bool `json:"completedItems"`

	// URLs is the ordered set of pages under test. Insertion order matters:
	// report sections follow it. Entries are unique (case-sensitive match).
	URLs []string `json:"urls"`

	// SelectedURL is the URL observation edits currently target.
	// It is not validated against URLs.
	SelectedURL string `json:"selectedUrl"`

	// DateCreated is set once when the audit session is first created and
	// never changes until the state is cleared.
	DateCreated time.Time `json:"dateCreated"`

	// ExecutiveSummary is the auditor's free-text summary of findings.
	ExecutiveSummary string `json:"executiveSummary"`

	// OtherFindings holds findings outside the criterion list.
	// Only the in-depth flow presents this field.
	OtherFindings string `json:"otherFindings,omitempty"`
}

// NewAuditState returns an empty audit state with DateCreated set to now.
func NewAuditState() *AuditState {
	return &AuditState{
		Observations:   make(map[string]map[string]string),
		CompletedItems: make(map[string]map[string]bool),
		URLs:           make([]string, 0),
		DateCreated:    time.Now(),
	}
}

// Normalize fills nil maps and slices after a tolerant JSON load.
// Missing fields rehydrate to their documented defaults; a zero DateCreated
// (absent in the stored blob) is replaced with the current time so the
// "set once" rule holds from the moment the state becomes visible.
func (s *AuditState) Normalize() {
	if s.Observations == nil {
		s.Observations = make(map[string]map[string]string)
	}
	if s.CompletedItems == nil {
		s.CompletedItems = make(map[string]map[string]bool)
	}
	if s.URLs == nil {
		s.URLs = make([]string, 0)
	}
	if s.DateCreated.IsZero() {
		s.DateCreated = time.Now()
	}
}

// HasURL reports whether url is already a member of URLs.
// Matching is a case-sensitive exact comparison.
func (s AuditState) HasURL(url string) bool {
	for _, u := range s.URLs {
		if u == url {
			return true
		}
	}
	return false
}

// Observation returns the observation text for (url, key), or "" if absent.
func (s AuditState) Observation(url, key string) string {
	return s.Observations[url][key]
}

// Completed returns the done flag for (url, key), defaulting to false.
func (s AuditState) Completed(url, key string) bool {
	return s.CompletedItems[url][key]
}

// Clone returns a deep copy of the state. The report assembler works on a
// snapshot so that later mutations cannot alter an already-produced report.
func (s AuditState) Clone() *AuditState {
	c := &AuditState{
		ClientName:       s.ClientName,
		ClientID:         s.ClientID,
		Observations:     make(map[string]map[string]string, len(s.Observations)),
		CompletedItems:   make(map[string]map[string]bool, len(s.CompletedItems)),
		URLs:             make([]string, len(s.URLs)),
		SelectedURL:      s.SelectedURL,
		DateCreated:      s.DateCreated,
		ExecutiveSummary: s.ExecutiveSummary,
		OtherFindings:    s.OtherFindings,
	}
	copy(c.URLs, s.URLs)
	for url, obs := range s.Observations {
		inner := make(map[string]string, len(obs))
		for k, v := range obs {
			inner[k] = v
		}
		c.Observations[url] = inner
	}
	for url, done := range s.CompletedItems {
		inner := make(map[string]bool, len(done))
		for k, v := range done {
			inner[k] = v
		}
		c.CompletedItems[url] = inner
	}
	return c
}
