package journal

import (
	"context"
	"log/slog"
	"sort"
)

// Persister is the durable backing for a Journal. Load returns the full
// entry collection in insertion order (newest first); Save overwrites it.
type Persister interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// Journal is the append-only activity log.
//
// Entries are held in memory newest-first for display. Every mutation is
// written through to the Persister; a failed write is logged and the
// in-memory state remains the source of truth for the session. A failed
// load degrades to an empty journal - an unreadable log never blocks
// startup.
//
// Single-writer design: all operations are synchronous calls from one
// logical thread (UI events or CLI invocations). No locking.
type Journal struct {
	entries []Entry // newest first
	persist Persister
	ids     IDGenerator
	clock   Clock
	logger  *slog.Logger
}

// New creates a journal backed by the given persister. A nil persister
// yields an ephemeral, memory-only journal (used by headless analytics
// and tests).
func New(persist Persister, ids IDGenerator, clock Clock) *Journal {
	return &Journal{
		persist: persist,
		ids:     ids,
		clock:   clock,
		logger:  slog.Default(),
	}
}

// Init hydrates the journal from its persister. Missing or corrupt state
// is logged and treated as an empty collection; Init never returns an
// error to the caller.
func (j *Journal) Init(ctx context.Context) {
	if j.persist == nil {
		return
	}
	entries, err := j.persist.Load(ctx)
	if err != nil {
		j.logger.Warn("failed to load activity journal, starting empty", "error", err)
		j.entries = nil
		return
	}
	j.entries = entries
}

// flush writes the full collection through to the persister. Write
// failures are logged, never propagated - durability degrades silently
// while the in-memory journal keeps working.
func (j *Journal) flush(ctx context.Context) {
	if j.persist == nil {
		return
	}
	if err := j.persist.Save(ctx, j.entries); err != nil {
		j.logger.Warn("failed to persist activity journal", "error", err)
	}
}

// Append assigns an ID and timestamp to the entry, places it as the most
// recent record, persists, and returns the new ID. All fields except Note
// are write-once from this point on.
func (j *Journal) Append(ctx context.Context, e Entry) string {
	e.ID = j.ids.NewID()
	e.Timestamp = j.clock.Now()
	j.entries = append([]Entry{e}, j.entries...)
	j.flush(ctx)
	return e.ID
}

// AddNote attaches a note to an existing entry. Unknown IDs are a no-op.
func (j *Journal) AddNote(ctx context.Context, id, note string) {
	j.EditNote(ctx, id, note)
}

// EditNote replaces an entry's note. An empty note clears it. Unknown IDs
// are a no-op.
func (j *Journal) EditNote(ctx context.Context, id, note string) {
	for i := range j.entries {
		if j.entries[i].ID == id {
			j.entries[i].Note = note
			j.flush(ctx)
			return
		}
	}
}

// Delete removes an entry by ID. This is a hard removal - no tombstone.
// Unknown IDs are a no-op.
func (j *Journal) Delete(ctx context.Context, id string) {
	for i := range j.entries {
		if j.entries[i].ID == id {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			j.flush(ctx)
			return
		}
	}
}

// Entries returns a copy of the collection, newest first. Callers that
// need chronology must re-sort with ByTimestampAscending.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Clear removes all entries. Unconditional: any "are you sure" step is
// the caller's concern and must happen before this is invoked.
func (j *Journal) Clear(ctx context.Context) {
	j.entries = nil
	j.flush(ctx)
}

// LogSkill records a skill activation.
func (j *Journal) LogSkill(ctx context.Context, skillID string, intensity Intensity, note string) string {
	return j.Append(ctx, Entry{
		Type:      TypeSkill,
		Action:    skillID,
		Intensity: intensity,
		Note:      note,
	})
}

// LogShadow records a shadow being set or cleared. A non-empty intensity
// means the shadow was detected; an empty intensity means it was cleared.
func (j *Journal) LogShadow(ctx context.Context, shadowID string, intensity Intensity, note string) string {
	sub := SubActionSet
	if intensity == IntensityNone {
		sub = SubActionClear
	}
	return j.Append(ctx, Entry{
		Type:      TypeShadow,
		Action:    shadowID,
		Intensity: intensity,
		SubAction: sub,
		Note:      note,
	})
}

// LogSovereignty records a sovereignty change. The value travels only in
// the structured payload, never in the intensity slot.
func (j *Journal) LogSovereignty(ctx context.Context, newValue, oldValue int, note string) string {
	return j.Append(ctx, Entry{
		Type:        TypeSovereignty,
		Action:      ActionChange,
		Note:        note,
		Sovereignty: &SovereigntyChange{NewValue: newValue, OldValue: oldValue},
	})
}

// LogLoopPhase records a loop phase transition.
func (j *Journal) LogLoopPhase(ctx context.Context, phase, note string) string {
	return j.Append(ctx, Entry{
		Type:   TypeLoop,
		Action: ActionPhaseChange,
		Note:   note,
		Loop:   &LoopData{Phase: phase},
	})
}

// LogLoopComplete records a full loop cycle completion.
func (j *Journal) LogLoopComplete(ctx context.Context, note string) string {
	return j.Append(ctx, Entry{
		Type:   TypeLoop,
		Action: ActionCompleted,
		Note:   note,
	})
}

// LogCheckin records a check-in answer. The question text is the action.
func (j *Journal) LogCheckin(ctx context.Context, question, answer, note string) string {
	return j.Append(ctx, Entry{
		Type:    TypeCheckin,
		Action:  question,
		Note:    note,
		Checkin: &CheckinData{Answer: answer},
	})
}

// LogManualNote records a free-standing journal note.
func (j *Journal) LogManualNote(ctx context.Context, note string) string {
	return j.Append(ctx, Entry{
		Type:   TypeNote,
		Action: ActionManual,
		Note:   note,
	})
}

// LogSessionStart records the state snapshot observed at session start.
// The shadows map is keyed by shadow ID; the derived list is sorted by ID
// so the stored payload is deterministic.
func (j *Journal) LogSessionStart(ctx context.Context, sovereignty int, phase string, shadows map[string]Intensity) string {
	list := make([]ShadowState, 0, len(shadows))
	for id, intensity := range shadows {
		list = append(list, ShadowState{ID: id, Intensity: intensity})
	}
	sort.Slice(list, func(a, b int) bool { return list[a].ID < list[b].ID })
	return j.Append(ctx, Entry{
		Type:   TypeSession,
		Action: ActionStart,
		Session: &SessionData{
			Sovereignty: sovereignty,
			Phase:       phase,
			ShadowCount: len(list),
			Shadows:     list,
		},
	})
}
