package catalog

import (
	"sort"

	"github.com/stormfors/wcag-audit/internal/model"
)

// Criterion is one audit check item: a numbered WCAG success criterion in
// the in-depth catalog, or a named easy-check in the basic catalog.
// All fields are reference data; none are user-editable.
type Criterion struct {
	// ID is the stable key observations are stored under.
	// Basic checks use camelCase ids ("imageAlt"); in-depth criteria use
	// the dotted criterion number ("1.3.4"). IDs are persistence keys and
	// must never change.
	ID string

	// DisplayName is the human-readable label shown in the UI and reports,
	// e.g. "Image Alternative Text" or "1.3.4 Orientation".
	DisplayName string

	// Category is the WCAG principle (Perceivable, Operable, Understandable,
	// Robust). Empty for basic checklist items.
	Category string

	// Level is the conformance level tag (A, AA). Empty for basic items.
	Level string

	// Group is the basic checklist section the item belongs to
	// (Common Checks, Audio/Visual Checks, Form Checks). Empty for in-depth
	// criteria, which group by Category instead.
	Group string

	// Description explains the criterion in plain language.
	Description string

	// HowToCheck describes the verification steps.
	HowToCheck string

	// ToolMethod names the tool or method used for the check.
	ToolMethod string

	// WhereToCheck describes which parts of the page the check applies to.
	WhereToCheck string

	// LearnMoreURL links to the authoritative explanation, when one exists.
	LearnMoreURL string
}

// Number returns the parsed dotted criterion number for in-depth criteria.
// Basic items have no number and return the zero value.
func (c Criterion) Number() CriterionNumber {
	n, _ := ParseCriterionNumber(c.DisplayName)
	return n
}

// Catalog is an immutable, ordered criterion list with id and display-name
// lookup. The slice order is the canonical report order.
type Catalog struct {
	items  []Criterion
	byID   map[string]int
	byName map[string]int
}

// New builds a Catalog from items, preserving their order.
// Lookup indexes are built for both ID and DisplayName.
func New(items []Criterion) *Catalog {
	c := &Catalog{
		items:  items,
		byID:   make(map[string]int, len(items)),
		byName: make(map[string]int, len(items)),
	}
	for i, item := range items {
		c.byID[item.ID] = i
		c.byName[item.DisplayName] = i
	}
	return c
}

// ForVariant returns the catalog for the given audit variant.
func ForVariant(v model.Variant) *Catalog {
	if v == model.VariantInDepth {
		return inDepthCatalog
	}
	return basicCatalog
}

// Lookup resolves a stored observation key to its criterion.
// It tries the stable id first, then the display name, because the two
// variants historically keyed observations differently. The boolean is
// false when the key matches neither.
func (c *Catalog) Lookup(key string) (Criterion, bool) {
	if i, ok := c.byID[key]; ok {
		return c.items[i], true
	}
	if i, ok := c.byName[key]; ok {
		return c.items[i], true
	}
	return Criterion{}, false
}

// Len returns the number of criteria in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the criteria in canonical order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Items() []Criterion {
	return c.items
}

// Position returns the canonical index of the given observation key,
// or the catalog length when the key is unknown, so unknown keys sort
// after all known criteria while preserving their relative order.
func (c *Catalog) Position(key string) int {
	if i, ok := c.byID[key]; ok {
		return i
	}
	if i, ok := c.byName[key]; ok {
		return i
	}
	return len(c.items)
}

// Groups returns the distinct Group labels in first-appearance order.
// Only the basic catalog has groups; the in-depth catalog returns nil.
func (c *Catalog) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, item := range c.items {
		if item.Group == "" || seen[item.Group] {
			continue
		}
		seen[item.Group] = true
		groups = append(groups, item.Group)
	}
	return groups
}

// ItemsInGroup returns the basic-catalog items belonging to group,
// in catalog order.
func (c *Catalog) ItemsInGroup(group string) []Criterion {
	var items []Criterion
	for _, item := range c.items {
		if item.Group == group {
			items = append(items, item)
		}
	}
	return items
}

// sortByNumber orders criteria by their dotted number: major, then minor,
// then patch, compared numerically. Items without a parsable number keep
// their relative order after all numbered items.
func sortByNumber(items []Criterion) []Criterion {
	sorted := make([]Criterion, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := ParseCriterionNumber(sorted[i].DisplayName)
		b, bok := ParseCriterionNumber(sorted[j].DisplayName)
		if aok != bok {
			return aok // numbered items first
		}
		if !aok {
			return false
		}
		return a.Less(b)
	})
	return sorted
}
