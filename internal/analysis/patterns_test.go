package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sovhud/internal/journal"
)

var day = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// seq assigns sequential IDs and timestamps one minute apart so
// chronological order matches slice order.
func seq(entries ...journal.Entry) []journal.Entry {
	for i := range entries {
		entries[i].ID = fmt.Sprintf("%02d", i)
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = day.Add(time.Duration(i) * time.Minute)
		}
	}
	return entries
}

func sovChange(oldValue, newValue int) journal.Entry {
	return journal.Entry{
		Type:        journal.TypeSovereignty,
		Action:      journal.ActionChange,
		Sovereignty: &journal.SovereigntyChange{NewValue: newValue, OldValue: oldValue},
	}
}

func note(text string) journal.Entry {
	return journal.Entry{Type: journal.TypeNote, Action: journal.ActionManual, Note: text}
}

func TestAnalyze_CrashBoundary(t *testing.T) {
	crashed := Analyze(seq(sovChange(80, 50), sovChange(50, 45)))
	assert.True(t, crashed.Patterns.SovereigntyCrash, "drop of exactly 30 is a crash")

	nearMiss := Analyze(seq(sovChange(80, 51), sovChange(51, 45)))
	assert.False(t, nearMiss.Patterns.SovereigntyCrash, "drop of 29 is not a crash")
}

func TestAnalyze_CrashOverriddenByRecovery(t *testing.T) {
	r := Analyze(seq(sovChange(80, 10), sovChange(10, 55)))

	assert.False(t, r.Patterns.SovereigntyCrash, "crash is not an active concern once current >= 50")
	assert.True(t, r.Patterns.CriticallyDepleted)
	assert.True(t, r.Patterns.RecoveredFromCrash)
}

func TestAnalyze_RestorationAndGain(t *testing.T) {
	r := Analyze(seq(sovChange(40, 75)))
	assert.True(t, r.Patterns.SignificantGain)
	assert.True(t, r.Patterns.SovereigntyRestored)

	gainOnly := Analyze(seq(sovChange(60, 95)))
	assert.True(t, gainOnly.Patterns.SignificantGain)
	assert.False(t, gainOnly.Patterns.SovereigntyRestored, "old value of 60 was not depleted")
}

func TestAnalyze_CompositeNoteFlags(t *testing.T) {
	t.Run("sleep and avoidance in same note", func(t *testing.T) {
		r := Analyze(seq(note("I'll go to bed soon, I promise")))
		assert.True(t, r.Patterns.SleepAvoidance)
		assert.True(t, r.Patterns.ExcuseMaking)
		assert.True(t, r.Patterns.CommitmentDeflection)
	})

	t.Run("sleep and avoidance in separate notes", func(t *testing.T) {
		r := Analyze(seq(note("so tired today"), note("later maybe")))
		assert.False(t, r.Patterns.SleepAvoidance, "co-occurrence must be within one note")
		assert.False(t, r.Patterns.ExcuseMaking)
	})

	t.Run("over-activation requires late night", func(t *testing.T) {
		lateNote := note("too excited to sleep")
		lateNote.Timestamp = time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
		r := Analyze(seq(lateNote))
		assert.True(t, r.Patterns.OverActivation)
		assert.True(t, r.Patterns.ResistanceToRelease)
		assert.True(t, r.Patterns.LateNightActivity)

		dayR := Analyze(seq(note("too excited to sleep")))
		assert.False(t, dayR.Patterns.OverActivation, "excitement without late night is not over-activation")
		assert.True(t, dayR.Patterns.ResistanceToRelease)
	})
}

func TestAnalyze_LateNightBand(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{22, false},
		{23, true},
		{0, true},
		{4, true},
		{5, false},
	}
	for _, tt := range tests {
		e := note("")
		e.Timestamp = time.Date(2025, 3, 10, tt.hour, 15, 0, 0, time.UTC)
		r := Analyze(seq(e))
		assert.Equal(t, tt.want, r.Patterns.LateNightActivity, "hour %d", tt.hour)
	}
}

func TestAnalyze_ReleaseAndLoop(t *testing.T) {
	checkin := journal.Entry{Type: journal.TypeCheckin, Action: "release",
		Checkin: &journal.CheckinData{Answer: "Yes"}}
	r := Analyze(seq(checkin))
	assert.True(t, r.Patterns.ReleaseCompleted)

	yield := journal.Entry{Type: journal.TypeSkill, Action: "sovereign_yield", Intensity: journal.IntensityMed}
	r = Analyze(seq(yield))
	assert.True(t, r.Patterns.ReleaseCompleted, "sovereign yield counts as release engagement")

	loop := journal.Entry{Type: journal.TypeLoop, Action: journal.ActionCompleted}
	r = Analyze(seq(loop))
	assert.True(t, r.Patterns.LoopCompleted)
	assert.Contains(t, r.Insights, "The loop was completed. All phases honored. This is how the system is meant to work — not perfection, but completion.")
}

func TestAnalyze_InsightPriorityOrder(t *testing.T) {
	r := Analyze(seq(
		sovChange(80, 15),
		note("this is awful, I am drowning"),
		note("feeling calm now"),
	))

	// Crash of -65 with current at 15: depleted and crash both active.
	assert.True(t, r.Patterns.CriticallyDepleted)
	assert.True(t, r.Patterns.SovereigntyCrash)
	assert.True(t, r.Patterns.Distress)
	assert.True(t, r.Patterns.RestorationLanguage)

	assert.GreaterOrEqual(t, len(r.Insights), 4)
	assert.Contains(t, r.Insights[0], "critically depleted")
	assert.Contains(t, r.Insights[1], "sovereignty crash")
	assert.Contains(t, r.Insights[2], "distress signals")

	restorationIdx := -1
	for i, s := range r.Insights {
		if s == `The notes reflect restoration. Words like "rested," "better," "calm" — these are not trivial. They are evidence that recovery is possible.` {
			restorationIdx = i
		}
	}
	assert.Greater(t, restorationIdx, 2, "positive insights come after critical ones")
}

func TestAnalyze_RecoveredFromCrashVariants(t *testing.T) {
	base := []journal.Entry{sovChange(70, 25), sovChange(25, 60)}

	withWalling := append([]journal.Entry{}, base...)
	withWalling = append(withWalling, journal.Entry{Type: journal.TypeSkill, Action: "walling", Intensity: journal.IntensityHigh})
	r := Analyze(seq(withWalling...))
	assert.True(t, r.Patterns.RecoveredFromCrash)
	assert.Contains(t, r.Insights, "You crashed, then used Walling to recover. This is the system working: something drained you, you set boundaries, sovereignty returned. Remember what the boundary was.")

	r = Analyze(seq(base...))
	assert.True(t, r.Patterns.RecoveredFromCrash)
	assert.Contains(t, r.Insights, "Something hit you hard, but you recovered. The crash-and-recovery arc is complete. Note what drained you and what restored you — this is self-knowledge.")
}

func TestAnalyze_OrderIndependent(t *testing.T) {
	entries := seq(sovChange(80, 10), sovChange(10, 55), note("said no to the extra project"))

	reversed := make([]journal.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	assert.Equal(t, Analyze(entries), Analyze(reversed))
}

func TestAnalyze_Empty(t *testing.T) {
	r := Analyze(nil)
	assert.Equal(t, Patterns{}, r.Patterns)
	assert.Empty(t, r.Insights)
}
