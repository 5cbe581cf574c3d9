// Package model defines the core data structures used throughout the
// WCAG audit workbench.
//
// This package contains the following main types:
//   - AuditState: The single audit-in-progress for one variant
//   - ReportDocument: The derived, export-ready report structure
//   - Variant: The two parallel audit flows (basic and in-depth)
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (store, report, server) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for state persistence
// and report output. AuditState's JSON tags define the persisted layout and
// must stay stable across releases; there is no schema version field, so
// missing fields must always rehydrate to their documented defaults.
package model
