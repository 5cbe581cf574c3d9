// Package catalog provides the static accessibility criterion catalogs.
//
// Two catalogs exist, one per audit variant:
//   - Basic: the W3C WAI "easy checks" checklist (16 items)
//   - InDepth: the full WCAG 2.2 success criteria list (55 criteria)
//
// Catalogs are defined at build time and never mutated at runtime. Their
// responsibility is limited to lookup by id or display name and providing
// the canonical ordering used by reports: numeric dotted-number order for
// the in-depth catalog, insertion order for the basic checklist.
//
// Design decision: The criterion texts live in Go source rather than an
// embedded data file because they are part of the program's contract (ids
// are persistence keys) and keeping them typed makes an accidental id
// rename a compile-visible diff rather than a silent data change.
package catalog
