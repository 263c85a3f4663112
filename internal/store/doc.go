// Package store persists sources and detections to SQLite for the CLI
// layer. The detection engine itself never touches storage; this package is
// the persistence collaborator the engine's output contract anticipates.
//
// Writes are idempotent (INSERT ... ON CONFLICT DO NOTHING on natural
// keys), so re-running a batch over the same inputs leaves the database
// unchanged. Reads order deterministically by peak time, then row id.
//
// The database runs in WAL mode with a single writer connection, which is
// how SQLite behaves well under one-process batch use.
package store
