// Package server serves the audit workbench over HTTP.
//
// The server binds to the loopback interface and exposes three surfaces:
//   - HTML pages: the landing page and the per-variant audit form
//   - a JSON API the audit form mutates state through
//   - export endpoints streaming generated reports as downloads
//
// Design decision: The browser UI talks to the JSON API rather than
// posting forms, so every keystroke-level mutation (observation text,
// checkmarks) persists immediately without page reloads, matching how
// auditors actually work through a checklist.
package server
