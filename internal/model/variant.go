package model

import "fmt"

// Variant identifies one of the two parallel audit flows.
// Each variant has its own criterion catalog and its own persisted state,
// so an auditor can run a basic check and an in-depth audit side by side
// without one overwriting the other.
type Variant string

const (
	// VariantBasic is the short easy-checks flow (~16 checklist items).
	VariantBasic Variant = "basic"

	// VariantInDepth is the full WCAG 2.2 criteria flow (~55 criteria).
	VariantInDepth Variant = "in-depth"
)

// storageKey values are the fixed persistence keys, one per variant.
// They mirror the keys the audit data has always been stored under and
// must never change: renaming a key would silently orphan saved audits.
const (
	basicStorageKey   = "basicTestsAuditData"
	inDepthStorageKey = "inDepthTestsAuditData"
)

// ParseVariant converts a user-supplied string into a Variant.
// It accepts the canonical names ("basic", "in-depth") plus the common
// "indepth" spelling. Unknown values return an error rather than a default
// so a typo in --variant cannot clear or export the wrong audit.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "basic":
		return VariantBasic, nil
	case "in-depth", "indepth":
		return VariantInDepth, nil
	default:
		return "", fmt.Errorf("unknown audit variant %q (want %q or %q)", s, VariantBasic, VariantInDepth)
	}
}

// String returns the canonical variant name.
func (v Variant) String() string {
	return string(v)
}

// StorageKey returns the fixed key this variant's state persists under.
func (v Variant) StorageKey() string {
	if v == VariantInDepth {
		return inDepthStorageKey
	}
	return basicStorageKey
}

// Title returns the human-readable variant title used in the UI and reports.
func (v Variant) Title() string {
	if v == VariantInDepth {
		return "In-Depth WCAG Audit"
	}
	return "Basic Accessibility Checks"
}
