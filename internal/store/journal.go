package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sovhud/internal/journal"
)

// StorageKey is the fixed key the activity journal persists under.
// Single-profile for now; a multi-profile layout would add keys.
const StorageKey = "sovereign-architect-activity-log"

// journalVersion is the schema version embedded in the persisted JSON
// envelope. Bump when the Entry wire shape changes.
const journalVersion = 1

// envelope is the persisted JSON document: a defensive schema version
// plus the full entry array in insertion order (newest first).
type envelope struct {
	Version int             `json:"version"`
	Entries []journal.Entry `json:"entries"`
}

// Load reads the journal state from the fixed key. A missing row is an
// empty journal, not an error. Corrupt JSON is an error; the journal
// layer downgrades it to "start empty" with a logged warning.
func (s *Store) Load(ctx context.Context) ([]journal.Entry, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM hud_state WHERE key = ?`, StorageKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("load journal: parse state: %w", err)
	}
	if env.Version > journalVersion {
		return nil, fmt.Errorf("load journal: state version %d is newer than supported %d", env.Version, journalVersion)
	}
	return env.Entries, nil
}

// Save serializes the full entry collection and writes it through under
// the fixed key. The write replaces the previous document atomically
// (single UPSERT statement).
func (s *Store) Save(ctx context.Context, entries []journal.Entry) error {
	data, err := json.Marshal(envelope{Version: journalVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO hud_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`,
		StorageKey,
		string(data),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	return nil
}
