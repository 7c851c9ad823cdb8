package cli

import (
	"context"
	"log/slog"

	"sovhud/internal/catalog"
	"sovhud/internal/journal"
	"sovhud/internal/store"
)

// session bundles the open store, hydrated journal, and catalog for one
// command invocation.
type session struct {
	store   *store.Store
	journal *journal.Journal
	catalog *catalog.Catalog
}

// openSession opens the database, hydrates the journal, and loads the
// catalog (embedded default unless --catalog was given).
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	slog.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	cat := catalog.Default()
	if opts.Catalog != "" {
		cat, err = catalog.LoadFile(opts.Catalog)
		if err != nil {
			st.Close()
			return nil, WrapExitError(ExitCommandError, "failed to load catalog", err)
		}
	}

	j := journal.New(st, journal.UUIDv7Generator{}, journal.SystemClock{})
	j.Init(ctx)

	return &session{store: st, journal: j, catalog: cat}, nil
}

// Close releases the session's database.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
