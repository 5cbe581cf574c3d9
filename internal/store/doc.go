// Package store persists audit state between sessions.
//
// Two layers live here:
//   - AuditDB: a small SQLite-backed key/value table, one row per audit
//     variant, holding the serialized state as JSON
//   - Store: the in-memory working copy of one variant's state, with
//     mutation methods that write through to the database
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a
// plain JSON file because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Writes are atomic, so an interrupted save never corrupts the state
// 4. WAL mode provides good concurrent read performance
//
// Persistence is best-effort: a failed write is logged and the in-memory
// state stays authoritative for the rest of the session.
package store
