package analysis

import (
	"sort"
	"strings"

	"sovhud/internal/journal"
)

// Patterns is the boolean flag set derived from one pass over the
// journal. Negative flags first, positive flags after, mirroring how the
// insight rules consume them.
type Patterns struct {
	SleepAvoidance       bool `json:"sleepAvoidance"`
	ExcuseMaking         bool `json:"excuseMaking"`
	OverActivation       bool `json:"overActivation"`
	ResistanceToRelease  bool `json:"resistanceToRelease"`
	SelfCriticism        bool `json:"selfCriticism"`
	UrgencyLanguage      bool `json:"urgencyLanguage"`
	CommitmentDeflection bool `json:"commitmentDeflection"`
	LateNightActivity    bool `json:"lateNightActivity"`
	Distress             bool `json:"distress"`
	SovereigntyCrash     bool `json:"sovereigntyCrash"`
	CriticallyDepleted   bool `json:"criticallyDepleted"`

	SovereigntyRestored    bool `json:"sovereigntyRestored"`
	SignificantGain        bool `json:"significantGain"`
	ReleaseCompleted       bool `json:"releaseCompleted"`
	RestorationLanguage    bool `json:"restorationLanguage"`
	AccomplishmentLanguage bool `json:"accomplishmentLanguage"`
	BoundarySuccess        bool `json:"boundarySuccess"`
	LoopCompleted          bool `json:"loopCompleted"`
	RecoveredFromCrash     bool `json:"recoveredFromCrash"`
}

// Result pairs the flag set with the ranked insight sentences derived
// from it. Insight order is a contract: critical-state insights first,
// then distress/avoidance, then positive/restorative.
type Result struct {
	Patterns Patterns `json:"patterns"`
	Insights []string `json:"insights"`
}

// Analyze scans notes for keyword signals and the sovereignty trajectory
// for crashes, gains, and recovery, then generates insights in priority
// order.
func Analyze(entries []journal.Entry) Result {
	sorted := chronological(entries)

	var p Patterns

	for _, e := range sorted {
		if isLateNight(e.Timestamp.Hour()) {
			p.LateNightActivity = true
			break
		}
	}

	scanNotes(sorted, &p)
	scanTrajectory(sorted, &p)

	for _, e := range sorted {
		if e.Type == journal.TypeLoop && e.Action == journal.ActionCompleted {
			p.LoopCompleted = true
			break
		}
	}

	// Release engagement: a "yes" check-in answer or a Sovereign Yield
	// activation both count.
	for _, e := range sorted {
		if e.Type == journal.TypeCheckin && e.Checkin != nil &&
			strings.Contains(strings.ToLower(e.Checkin.Answer), "yes") {
			p.ReleaseCompleted = true
			break
		}
		if e.Type == journal.TypeSkill && e.Action == "sovereign_yield" {
			p.ReleaseCompleted = true
			break
		}
	}

	wallingUsed := false
	for _, e := range sorted {
		if e.Type == journal.TypeSkill && e.Action == "walling" {
			wallingUsed = true
			break
		}
	}

	return Result{Patterns: p, Insights: insights(p, wallingUsed)}
}

// scanNotes applies the keyword heuristics per note. Composite flags
// require co-occurrence inside the same note.
func scanNotes(entries []journal.Entry, p *Patterns) {
	for _, e := range entries {
		if e.Note == "" {
			continue
		}
		note := normalizeNote(e.Note)

		hasSleep := containsAny(note, sleepWords)
		hasAvoidance := containsAny(note, avoidanceWords)
		hasExcitement := containsAny(note, excitementWords)
		lateNight := isLateNight(e.Timestamp.Hour())

		if hasSleep && hasAvoidance {
			p.SleepAvoidance = true
			p.ExcuseMaking = true
		}
		if hasExcitement && lateNight {
			p.OverActivation = true
		}
		if hasSleep && hasExcitement {
			p.ResistanceToRelease = true
		}
		if containsAny(note, distressWords) {
			p.Distress = true
		}
		if hasAvoidance && (strings.Contains(note, "promise") ||
			strings.Contains(note, "i'll") || strings.Contains(note, "i will")) {
			p.CommitmentDeflection = true
		}
		if containsAny(note, urgencyWords) {
			p.UrgencyLanguage = true
		}
		if containsAny(note, selfCriticalWords) {
			p.SelfCriticism = true
		}
		if containsAny(note, restorationWords) {
			p.RestorationLanguage = true
		}
		if containsAny(note, accomplishmentWords) {
			p.AccomplishmentLanguage = true
		}
		if containsAny(note, boundaryWords) {
			p.BoundarySuccess = true
		}
	}
}

// scanTrajectory walks sovereignty changes in chronological order.
//
// The crash flag is overridden to false when the most recent value is at
// or above 50 - recency dominates history here: a crash the user already
// recovered from is not reported as an active concern. RecoveredFromCrash
// and CriticallyDepleted remain independently computed.
func scanTrajectory(entries []journal.Entry, p *Patterns) {
	lowest := 100
	hadCrash := false
	hasPoints := false
	current := 0

	for _, e := range entries {
		if e.Type != journal.TypeSovereignty || e.Sovereignty == nil {
			continue
		}
		hasPoints = true
		newValue := e.Sovereignty.NewValue
		change := newValue - e.Sovereignty.OldValue
		current = newValue

		if newValue < lowest {
			lowest = newValue
		}
		if change <= -30 {
			hadCrash = true
			p.SovereigntyCrash = true
		}
		if newValue <= 20 {
			p.CriticallyDepleted = true
		}
		if change >= 30 {
			p.SignificantGain = true
		}
		if newValue >= 70 && e.Sovereignty.OldValue < 50 {
			p.SovereigntyRestored = true
		}
	}

	if !hasPoints {
		return
	}
	if hadCrash && current > lowest+15 {
		p.RecoveredFromCrash = true
	}
	if current >= 50 {
		p.SovereigntyCrash = false
	}
}

// insights evaluates the fixed, ordered flag-to-sentence rules. Multiple
// rules may fire; all fire in this order.
func insights(p Patterns, wallingUsed bool) []string {
	var out []string
	add := func(cond bool, s string) {
		if cond {
			out = append(out, s)
		}
	}

	// Critical-state insights first.
	add(p.CriticallyDepleted, "You are critically depleted. This is not a time for productivity or pushing through. This is a time for immediate restoration. Everything else can wait.")
	add(p.SovereigntyCrash, "A significant sovereignty crash occurred. Something drained you hard. Name what happened. This is data about what costs you the most.")
	add(p.Distress, "The notes contain distress signals. This is not fine. The system is telling you something is wrong. Listen to it before it gets louder.")
	add(p.SleepAvoidance && p.LateNightActivity, `The notes reveal a pattern: you know you should rest, but you are not resting. The promises to "go to bed soon" are the Protector negotiating with exhaustion. This is not sustainable.`)
	add(p.OverActivation, `Excitement is being used to override the body's need for rest. "Too excited to sleep" is Intensity Addiction wearing a positive mask. The crash is coming.`)
	add(p.ResistanceToRelease && !p.SleepAvoidance, "There is resistance to the Release phase. The notes show engagement with everything except surrender. The loop cannot complete without this phase.")
	add(p.CommitmentDeflection, `The notes contain promises that defer action: "soon," "I'll," "I will." Notice: these are negotiations, not decisions. The Sovereign Architect names what is happening, then acts.`)
	add(p.UrgencyLanguage && p.LateNightActivity, `Urgency language at night suggests the nervous system is still in activation mode. "Have to" and "need to" at this hour means the Off switch is not functioning.`)
	add(p.SelfCriticism, "Self-critical language detected. This is the shadow speaking, not the architect. Harsh internal judgment depletes Sovereignty faster than any external drain.")

	// Positive insights after.
	add(p.SovereigntyRestored, "A significant restoration occurred. You crossed from depleted to resourced. Name what worked — this is data about what actually heals you.")
	add(p.SignificantGain && !p.SovereigntyRestored, "Sovereignty increased substantially. Something replenished you. Pay attention to what it was.")
	add(p.LoopCompleted, "The loop was completed. All phases honored. This is how the system is meant to work — not perfection, but completion.")
	add(p.ReleaseCompleted && !p.LoopCompleted, "The Release phase was engaged. Chosen surrender happened. This is the hardest phase for many — and you did it.")
	add(p.RestorationLanguage, `The notes reflect restoration. Words like "rested," "better," "calm" — these are not trivial. They are evidence that recovery is possible.`)
	add(p.AccomplishmentLanguage, `Completion was named in the notes. Acknowledging what was finished matters — it closes the loop and prevents the "never enough" drain.`)
	add(p.BoundarySuccess, `A boundary was held. "No" was said, or something was put down. This is Walling in action — reclaiming sovereignty one refusal at a time.`)

	if p.RecoveredFromCrash {
		if wallingUsed {
			out = append(out, "You crashed, then used Walling to recover. This is the system working: something drained you, you set boundaries, sovereignty returned. Remember what the boundary was.")
		} else {
			out = append(out, "Something hit you hard, but you recovered. The crash-and-recovery arc is complete. Note what drained you and what restored you — this is self-knowledge.")
		}
	}

	return out
}

// chronological returns a copy of entries sorted oldest first.
func chronological(entries []journal.Entry) []journal.Entry {
	sorted := make([]journal.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		return journal.ByTimestampAscending(sorted[a], sorted[b])
	})
	return sorted
}
