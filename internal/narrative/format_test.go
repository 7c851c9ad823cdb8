package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sovhud/internal/journal"
)

var testTime = time.Date(2025, 1, 5, 15, 45, 0, 0, time.UTC)

func TestFormat_Narratives(t *testing.T) {
	tests := []struct {
		name      string
		entry     journal.Entry
		icon      string
		narrative string
	}{
		{
			name:      "skill activation",
			entry:     journal.Entry{Type: journal.TypeSkill, Action: "walling", Intensity: journal.IntensityLow},
			icon:      "▢",
			narrative: "Activated Walling (LOW) — declared boundary",
		},
		{
			name:      "skill sovereign yield",
			entry:     journal.Entry{Type: journal.TypeSkill, Action: "sovereign_yield", Intensity: journal.IntensityHigh},
			icon:      "~",
			narrative: "Activated Sovereign Yield (HIGH) — chose surrender, restored sovereignty",
		},
		{
			name:      "shadow set",
			entry:     journal.Entry{Type: journal.TypeShadow, Action: "over_control", Intensity: journal.IntensityMed, SubAction: journal.SubActionSet},
			icon:      "◉",
			narrative: "Over-Control State detected (MED) — Protector is gripping",
		},
		{
			name:      "shadow clear",
			entry:     journal.Entry{Type: journal.TypeShadow, Action: "isolation_spiral", SubAction: journal.SubActionClear},
			icon:      "○",
			narrative: "Isolation Spiral cleared — reconnected",
		},
		{
			name: "sovereignty with old value",
			entry: journal.Entry{Type: journal.TypeSovereignty, Action: journal.ActionChange,
				Sovereignty: &journal.SovereigntyChange{NewValue: 45, OldValue: 80}},
			icon:      "◆",
			narrative: "Sovereignty adjusted to 45% (was 80%)",
		},
		{
			name: "sovereignty without old value",
			entry: journal.Entry{Type: journal.TypeSovereignty, Action: journal.ActionChange,
				Sovereignty: &journal.SovereigntyChange{NewValue: 45}},
			icon:      "◆",
			narrative: "Sovereignty adjusted to 45%",
		},
		{
			name: "loop phase change",
			entry: journal.Entry{Type: journal.TypeLoop, Action: journal.ActionPhaseChange,
				Loop: &journal.LoopData{Phase: "Release"}},
			icon:      "↻",
			narrative: "Loop phase changed to: Release",
		},
		{
			name:      "loop completed",
			entry:     journal.Entry{Type: journal.TypeLoop, Action: journal.ActionCompleted},
			icon:      "↻",
			narrative: "Loop completed — full cycle achieved",
		},
		{
			name: "checkin release",
			entry: journal.Entry{Type: journal.TypeCheckin, Action: "release",
				Checkin: &journal.CheckinData{Answer: "Yes"}},
			icon:      "□",
			narrative: "Check-in: Release today? Yes",
		},
		{
			name: "checkin free-form question",
			entry: journal.Entry{Type: journal.TypeCheckin, Action: "How did I wake up?",
				Checkin: &journal.CheckinData{Answer: "Heavy"}},
			icon:      "□",
			narrative: "Check-in: How did I wake up? Heavy",
		},
		{
			name:      "manual note",
			entry:     journal.Entry{Type: journal.TypeNote, Action: journal.ActionManual, Note: "closing the day"},
			icon:      "·",
			narrative: "Journal entry",
		},
		{
			name: "session start with shadows",
			entry: journal.Entry{Type: journal.TypeSession, Action: journal.ActionStart,
				Session: &journal.SessionData{Sovereignty: 65, Phase: "Holding", ShadowCount: 2}},
			icon:      "►",
			narrative: "Session started — Sovereignty at 65%, Phase: Holding, 2 shadows active",
		},
		{
			name: "session start single shadow",
			entry: journal.Entry{Type: journal.TypeSession, Action: journal.ActionStart,
				Session: &journal.SessionData{Sovereignty: 80, ShadowCount: 1}},
			icon:      "►",
			narrative: "Session started — Sovereignty at 80%, 1 shadow active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Timestamp = testTime
			f := Format(tt.entry)
			assert.Equal(t, tt.icon, f.Icon)
			assert.Equal(t, tt.narrative, f.Narrative)
		})
	}
}

func TestFormat_TotalOverUnknownEntries(t *testing.T) {
	tests := []struct {
		name      string
		entry     journal.Entry
		icon      string
		narrative string
	}{
		{
			name:      "unknown type",
			entry:     journal.Entry{Type: "ritual", Action: "dawn"},
			icon:      "•",
			narrative: "ritual: dawn (n/a)",
		},
		{
			name:      "unknown skill action",
			entry:     journal.Entry{Type: journal.TypeSkill, Action: "breathing", Intensity: journal.IntensityMed},
			icon:      "•",
			narrative: "skill: breathing (med)",
		},
		{
			name:      "unknown shadow action",
			entry:     journal.Entry{Type: journal.TypeShadow, Action: "doom_scroll", Intensity: journal.IntensityHigh, SubAction: journal.SubActionSet},
			icon:      "•",
			narrative: "shadow: doom_scroll (high)",
		},
		{
			name:      "sovereignty without payload",
			entry:     journal.Entry{Type: journal.TypeSovereignty, Action: journal.ActionChange},
			icon:      "◆",
			narrative: "sovereignty: change (n/a)",
		},
		{
			name:      "session without payload",
			entry:     journal.Entry{Type: journal.TypeSession, Action: journal.ActionStart},
			icon:      "►",
			narrative: "session: start (n/a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Timestamp = testTime
			f := Format(tt.entry)
			assert.Equal(t, tt.icon, f.Icon)
			assert.Equal(t, tt.narrative, f.Narrative)
		})
	}
}

func TestFormat_Pure(t *testing.T) {
	e := journal.Entry{
		Type:      journal.TypeSkill,
		Action:    "gordian_cut",
		Intensity: journal.IntensityHigh,
		Note:      "named the actual problem",
		Timestamp: testTime,
	}
	assert.Equal(t, Format(e), Format(e))
}

func TestFormatTimestamp_Deterministic(t *testing.T) {
	assert.Equal(t, "Jan 5, 2025, 3:45 PM", FormatTimestamp(testTime))
	morning := time.Date(2025, 12, 31, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Dec 31, 2025, 9:05 AM", FormatTimestamp(morning))
}
