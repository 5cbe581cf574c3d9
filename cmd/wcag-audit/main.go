// Package main provides the entry point for the wcag-audit CLI.
//
// wcag-audit is a local accessibility auditing workbench for WCAG reviews.
// It serves a browser-based checklist on the loopback interface, persists
// audit progress between sessions, and exports findings as client-ready
// reports.
//
// Usage:
//
//	wcag-audit serve
//	wcag-audit export in-depth --format pdf
//
// See --help for all available options.
package main

// main is the entry point for wcag-audit.
func main() {
	Execute()
}
