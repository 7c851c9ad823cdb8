// Package journal implements the append-only activity log at the heart of
// the Sovereign Architect HUD.
//
// Every interaction the HUD surfaces - skill activations, shadow toggles,
// sovereignty slider moves, loop phase changes, check-in answers, manual
// notes, session starts - lands here as one typed Entry. The journal keeps
// entries newest-first for display; analytic consumers (weekly stats, the
// pattern analyzer, the reading generator) re-sort chronologically before
// computing arcs or trends. The two orderings serve different purposes and
// must not be conflated.
//
// ARCHITECTURE:
//
// Single-Writer:
// One user, one process, one logical thread. All mutations are synchronous
// calls; there is no concurrent writer and no locking on the in-memory
// slice. Persistence is write-through: every mutation serializes the full
// collection to the backing store. Read failures degrade to an empty
// journal, write failures degrade to memory-only operation - the journal
// never crashes the application over an unreadable or unwritable log.
//
// Determinism:
// Timestamps come from an injected Clock and IDs from an injected
// IDGenerator, so the analytics layers above can be exercised against
// byte-identical fixtures.
package journal
