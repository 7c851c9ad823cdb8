package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sovhud/internal/journal"
)

func entryAt(ts time.Time, typ journal.EntryType, action string) journal.Entry {
	return journal.Entry{Type: typ, Action: action, Timestamp: ts}
}

func TestComputeStats_WindowBoundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)

	entries := []journal.Entry{
		entryAt(cutoff.Add(time.Second), journal.TypeNote, journal.ActionManual),  // inside
		entryAt(cutoff, journal.TypeNote, journal.ActionManual),                   // exactly at cutoff: outside
		entryAt(cutoff.Add(-time.Second), journal.TypeNote, journal.ActionManual), // outside
	}

	stats := ComputeStats(entries, now)
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 1, stats.ThisWeekEntries)
}

func TestComputeStats_SkillAndShadowCounts(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour)
	old := now.Add(-8 * 24 * time.Hour)

	set := entryAt(recent, journal.TypeShadow, "over_control")
	set.SubAction = journal.SubActionSet
	clear := entryAt(recent, journal.TypeShadow, "over_control")
	clear.SubAction = journal.SubActionClear
	staleSkill := entryAt(old, journal.TypeSkill, "walling")

	entries := []journal.Entry{
		entryAt(recent, journal.TypeSkill, "walling"),
		entryAt(recent, journal.TypeSkill, "walling"),
		entryAt(recent, journal.TypeSkill, "gordian_cut"),
		set,
		clear,
		staleSkill,
	}

	stats := ComputeStats(entries, now)
	assert.Equal(t, 6, stats.TotalEntries)
	assert.Equal(t, 5, stats.ThisWeekEntries)
	assert.Equal(t, map[string]int{"walling": 2, "gordian_cut": 1}, stats.SkillCounts)
	assert.Equal(t, map[string]int{"over_control": 1}, stats.ShadowCounts, "clears are not detections")
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, 0, stats.ThisWeekEntries)
	assert.Empty(t, stats.SkillCounts)
	assert.Empty(t, stats.ShadowCounts)
}
