// Package store provides durable SQLite-backed storage for the HUD.
//
// The layout is a key-value document model: one fixed key holds the whole
// activity journal as a versioned JSON document. The journal is read and
// written whole, so a keyed document beats per-entry rows - no joins, no
// partial-write states. WAL mode plus a PRAGMA user_version stamp give
// future schema migrations somewhere to start from.
package store
