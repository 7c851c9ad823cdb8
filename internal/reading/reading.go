// Package reading generates the holistic "reading": a multi-paragraph
// narrative interpreting the journal's full arc.
//
// The generator is a staged classifier - current state from the latest
// sovereignty value, arc type from an ordered decision list, one key
// insight from an ordered rule list, a closing keyed to state and arc.
// It is deterministic: identical entries produce byte-identical output.
// Every place multiple candidates exist (top skill, primary shadow) is
// resolved by explicit sort order, never map iteration.
package reading

import (
	"fmt"
	"sort"
	"strings"

	"sovhud/internal/catalog"
	"sovhud/internal/journal"
)

// State classifies the most recent sovereignty value.
type State string

const (
	StateResourced State = "RESOURCED" // >= 70
	StateAdequate  State = "ADEQUATE"  // 40-69, and the no-data default
	StateDepleted  State = "DEPLETED"  // 20-39
	StateCritical  State = "CRITICAL"  // < 20
)

// Arc classifies the overall trajectory. Values are ordered by the
// decision list in classifyArc - first match wins.
type Arc string

const (
	ArcCrisis     Arc = "CRISIS"
	ArcRecovery   Arc = "RECOVERY"
	ArcRising     Arc = "RISING"
	ArcDeclining  Arc = "DECLINING"
	ArcVolatile   Arc = "VOLATILE"
	ArcStableHigh Arc = "STABLE_HIGH"
	ArcStableLow  Arc = "STABLE_LOW"
	ArcStable     Arc = "STABLE"
)

// emptyReading is the fixed output for a journal with no entries.
const emptyReading = "No patterns yet. The map is not the territory — begin tracking to see your architecture emerge."

// summary is the timeline digest the narrative stages draw from.
type summary struct {
	hasSovereignty bool
	current        int
	starting       int
	lowest         int
	highest        int

	skillCounts  map[string]int
	shadowCounts map[string]int
	skillEvents  int

	noteCount      int
	lateNightCount int

	hasDistress    bool
	hasRestoration bool
	hasBoundary    bool
	hasUrgency     bool

	// Pivotal sovereignty moves, tracked independently so the arc can
	// pick whichever is narratively relevant.
	biggestDropNote string
	hasBiggestDrop  bool
	biggestGainNote string
	hasBiggestGain  bool
}

// Classify returns the current state and arc type for an entry history.
// Exposed for the CLI's JSON output and for tests.
func Classify(entries []journal.Entry) (State, Arc) {
	s := summarize(entries)
	state := classifyState(s)
	return state, classifyArc(s, state)
}

// Generate produces the full reading. A journal with zero entries
// short-circuits to the fixed no-patterns sentence.
func Generate(entries []journal.Entry, cat *catalog.Catalog) string {
	if len(entries) == 0 {
		return emptyReading
	}

	s := summarize(entries)
	state := classifyState(s)
	arc := classifyArc(s, state)

	var b strings.Builder
	b.WriteString(opening(s, state))
	b.WriteString("\n\n")
	b.WriteString(arcStory(s, arc, cat))
	b.WriteString("\n\n")
	b.WriteString(keyInsight(s, state, arc))
	b.WriteString("\n\n")
	b.WriteString(closing(state, arc))
	return b.String()
}

func summarize(entries []journal.Entry) summary {
	timeline := make([]journal.Entry, len(entries))
	copy(timeline, entries)
	sort.SliceStable(timeline, func(a, b int) bool {
		return journal.ByTimestampAscending(timeline[a], timeline[b])
	})

	s := summary{
		lowest:       100,
		skillCounts:  map[string]int{},
		shadowCounts: map[string]int{},
	}

	biggestDrop := 0
	biggestGain := 0

	for _, e := range timeline {
		if e.Note != "" {
			s.noteCount++
			note := strings.ToLower(e.Note)
			s.hasDistress = s.hasDistress || containsAny(note, readingDistressWords)
			s.hasRestoration = s.hasRestoration || containsAny(note, readingRestorationWords)
			s.hasBoundary = s.hasBoundary || containsAny(note, readingBoundaryWords)
			s.hasUrgency = s.hasUrgency || containsAny(note, readingUrgencyWords)
		}

		h := e.Timestamp.Hour()
		if h >= 23 || h < 5 {
			s.lateNightCount++
		}

		switch e.Type {
		case journal.TypeSkill:
			s.skillEvents++
			s.skillCounts[e.Action]++

		case journal.TypeShadow:
			if e.SubAction == journal.SubActionSet {
				s.shadowCounts[e.Action]++
			}

		case journal.TypeSovereignty:
			if e.Sovereignty == nil {
				continue
			}
			value := e.Sovereignty.NewValue
			old := e.Sovereignty.OldValue
			if !s.hasSovereignty {
				s.hasSovereignty = true
				s.starting = old
				if old == 0 {
					s.starting = value
				}
			}
			s.current = value
			if value < s.lowest {
				s.lowest = value
			}
			if value > s.highest {
				s.highest = value
			}
			change := value - old
			if change < biggestDrop {
				biggestDrop = change
				s.biggestDropNote = e.Note
				s.hasBiggestDrop = true
			}
			if change > biggestGain {
				biggestGain = change
				s.biggestGainNote = e.Note
				s.hasBiggestGain = true
			}
		}
	}

	return s
}

func classifyState(s summary) State {
	if !s.hasSovereignty {
		return StateAdequate
	}
	switch {
	case s.current >= 70:
		return StateResourced
	case s.current >= 40:
		return StateAdequate
	case s.current >= 20:
		return StateDepleted
	default:
		return StateCritical
	}
}

// classifyArc is an ordered decision list - first match wins.
func classifyArc(s summary, state State) Arc {
	if !s.hasSovereignty {
		return ArcStable
	}
	netChange := s.current - s.starting
	valueRange := s.highest - s.lowest

	switch {
	case state == StateCritical:
		return ArcCrisis
	case s.lowest < 30 && s.current >= 50:
		return ArcRecovery
	case netChange >= 20:
		return ArcRising
	case netChange <= -20:
		return ArcDeclining
	case valueRange > 40:
		return ArcVolatile
	case s.current >= 60:
		return ArcStableHigh
	case s.current < 40:
		return ArcStableLow
	default:
		return ArcStable
	}
}

func opening(s summary, state State) string {
	openings := map[State]string{
		StateResourced: "You are resourced.",
		StateAdequate:  "You are holding.",
		StateDepleted:  "You are depleted.",
		StateCritical:  "You are in crisis.",
	}
	out := openings[state]
	if s.hasSovereignty {
		out += fmt.Sprintf(" Sovereignty at %d%%.", s.current)
	}
	return out
}

func arcStory(s summary, arc Arc, cat *catalog.Catalog) string {
	var b strings.Builder

	switch arc {
	case ArcCrisis:
		b.WriteString("The data shows a system under severe strain. ")
		if s.hasSovereignty && s.lowest < 20 {
			fmt.Fprintf(&b, "You dropped to %d%% — this is critical territory. ", s.lowest)
		}
		if s.hasDistress {
			b.WriteString("The language in your notes confirms what the numbers show: this is not fine. ")
		}
		b.WriteString("Everything else waits. Restoration is the only work right now.")

	case ArcRecovery:
		b.WriteString("This is a recovery arc. ")
		fmt.Fprintf(&b, "You hit %d%%, then climbed back to %d%%. ", s.lowest, s.current)
		if s.skillCounts["walling"] > 0 {
			b.WriteString("Walling appears in the log — boundaries were set. ")
		}
		if s.skillCounts["sovereign_yield"] > 0 {
			b.WriteString("Sovereign Yield was activated — you chose surrender. ")
		}
		if s.hasBoundary {
			b.WriteString("The notes mention putting things down, saying no. ")
		}
		b.WriteString("This is the system working: something drained you, you responded with the right tools, sovereignty returned.")

	case ArcRising:
		b.WriteString("The trajectory is upward. ")
		fmt.Fprintf(&b, "You moved from %d%% to %d%%. ", s.starting, s.current)
		if s.hasRestoration {
			b.WriteString("The notes reflect this — words like rest, better, calm. ")
		}
		b.WriteString("Whatever you did, keep doing it. This is what building looks like.")

	case ArcDeclining:
		b.WriteString("The trajectory is downward. ")
		fmt.Fprintf(&b, "From %d%% down to %d%%. ", s.starting, s.current)
		if shadow, ok := topCounted(s.shadowCounts); ok {
			fmt.Fprintf(&b, "%s has been active — this is likely the drain. ", cat.ShadowName(shadow))
		}
		if s.hasUrgency {
			b.WriteString(`The notes contain urgency language — "have to," "need to." This is the nervous system in overdrive. `)
		}
		b.WriteString("Name the leak. Apply the antidote. The decline is information, not destiny.")

	case ArcVolatile:
		b.WriteString("The pattern is volatile — significant swings without stabilizing. ")
		fmt.Fprintf(&b, "You've ranged from %d%% to %d%%. ", s.lowest, s.highest)
		b.WriteString("This is exhausting. The system needs steadier ground. Look for what triggers the swings.")

	case ArcStableHigh:
		b.WriteString("You are in stable territory. ")
		if s.skillEvents > 0 {
			b.WriteString("Skills are being used proactively rather than reactively. ")
		}
		b.WriteString("This is the state to protect. Note what is keeping you here.")

	case ArcStableLow:
		b.WriteString("You are stable, but at a depleted baseline. ")
		b.WriteString("This is chronic — not crisis, but not sustainable either. ")
		if s.skillCounts["sovereign_yield"] == 0 {
			b.WriteString("Sovereign Yield has not been activated. The Release phase may be missing. ")
		}
		b.WriteString("Small, consistent restoration beats waiting for a crash to force the issue.")

	default:
		b.WriteString("The arc is still forming. More data will reveal the pattern.")
	}

	return b.String()
}

// keyInsight picks exactly one paragraph from an ordered rule list that
// cross-references shadows, skills, timing, and notes. First match wins;
// the fallbacks are most-used-skill commentary, then a generic
// pattern-still-forming statement.
func keyInsight(s summary, state State, arc Arc) string {
	switch {
	case s.lateNightCount > 0 && s.hasUrgency:
		return "A pattern worth naming: urgency language at night. The Off switch is not functioning. The Protector is gripping the day, refusing to release. This prevents the loop from completing."

	case s.shadowCounts["false_responsibility"] > 0 && s.skillCounts["walling"] > 0:
		return "You detected False Responsibility and used Walling to address it. This is exactly right — you saw the drain and applied the specific antidote. Remember what you put down."

	case s.shadowCounts["intensity_addiction"] > 0 && state == StateDepleted:
		return "Intensity Addiction and depletion are a dangerous pair. The craving for stimulation masks the exhaustion underneath. Calm is not emptiness — it is where restoration lives."

	case s.skillCounts["galvanic_surge"] > 0 && (state == StateDepleted || state == StateCritical):
		return "Galvanic Surge was used, and you are now depleted. This skill rallies others at personal cost. The cost landed. Recovery is not optional."

	case arc == ArcRecovery && s.hasBiggestGain && s.biggestGainNote != "":
		return fmt.Sprintf("The recovery moment had a note: \"%s\" — this is data about what actually works for you.", s.biggestGainNote)

	case len(s.skillCounts) == 0 && len(s.shadowCounts) > 0:
		return "Shadows were tracked but skills were not activated. Awareness is step one, but you have tools for this. Use them."

	case len(s.skillCounts) > 0 && len(s.shadowCounts) == 0:
		return "Skills were used but no shadows tracked. Both streams matter — the tools and the awareness of what triggers the need for tools."

	case s.noteCount == 0:
		return "No notes in this log. The numbers tell part of the story, but the notes tell the rest. Context matters for pattern recognition."
	}

	if top, ok := topCounted(s.skillCounts); ok {
		if insight, ok := skillInsights[top]; ok {
			return insight
		}
		return "Your patterns are emerging."
	}
	return "The pattern is still forming. Keep tracking."
}

var skillInsights = map[string]string{
	"sovereign_yield":       "Sovereign Yield is your most-used skill. You are building the muscle of intentional surrender.",
	"walling":               "Walling is your most-used skill. You are learning what is and is not yours to carry.",
	"gordian_cut":           "Gordian Cut is your most-used skill. You see through complexity to name the actual problem.",
	"decisive_intervention": "Decisive Intervention is your most-used skill. You force movement when systems stall.",
	"galvanic_surge":        "Galvanic Surge is your most-used skill. You rally others — watch the personal cost.",
}

// closing selects the final sentence by state/arc precedence:
// CRITICAL > DEPLETED > RECOVERY > RESOURCED > default.
func closing(state State, arc Arc) string {
	switch {
	case state == StateCritical:
		return "Stop. Rest. Everything else can wait. The Sovereign Architect does not push through crisis — they restore first."
	case state == StateDepleted:
		return "Depletion requires active response, not passive hope. Name one thing that restores you. Do that."
	case arc == ArcRecovery:
		return "This is the system working. You crashed, you responded, you recovered. Remember what worked."
	case state == StateResourced:
		return "Protect this state. It is not guaranteed. Note what is sustaining it."
	default:
		return "The map is not the territory — but you are learning to read your own terrain."
	}
}

// topCounted returns the key with the highest count, ties broken by ID so
// the choice never depends on map iteration order.
func topCounted(counts map[string]int) (string, bool) {
	best := ""
	bestCount := 0
	for id, n := range counts {
		if n > bestCount || (n == bestCount && bestCount > 0 && id < best) {
			best = id
			bestCount = n
		}
	}
	return best, bestCount > 0
}
