// Package narrative renders journal entries as display-ready text.
//
// Formatting is total: every entry produces an icon and a narrative line,
// including entries with unknown types or action IDs, which fall back to
// a generic "type: action" rendering. Format is a pure function of the
// entry - no clock, no locale lookup, no state.
package narrative

import (
	"fmt"
	"strings"
	"time"

	"sovhud/internal/journal"
)

// timestampLayout is the human-readable display format, e.g.
// "Jan 5, 2025, 3:45 PM". Deterministic for a given instant.
const timestampLayout = "Jan 2, 2006, 3:04 PM"

// fallbackIcon is the glyph for unmapped entry types and actions.
const fallbackIcon = "•"

// Formatted is the display-ready projection of one entry.
type Formatted struct {
	Icon      string
	Narrative string
	Note      string
	Timestamp string
	Raw       time.Time
}

// skillLines maps skill IDs to their activation narratives.
var skillLines = map[string]string{
	"gordian_cut":           "Activated Gordian Cut (%s) — cut through complexity",
	"decisive_intervention": "Activated Decisive Intervention (%s) — forced movement",
	"galvanic_surge":        "Activated Galvanic Surge (%s) — rallied others",
	"sovereign_yield":       "Activated Sovereign Yield (%s) — chose surrender, restored sovereignty",
	"walling":               "Activated Walling (%s) — declared boundary",
}

// shadowSetLines and shadowClearLines map shadow IDs to their set/clear
// narratives.
var shadowSetLines = map[string]string{
	"over_control":         "Over-Control State detected (%s) — Protector is gripping",
	"isolation_spiral":     "Isolation Spiral detected (%s) — withdrawal pattern active",
	"intensity_addiction":  "Intensity Addiction detected (%s) — seeking chaos",
	"false_responsibility": "False Responsibility detected (%s) — carrying others' weight",
}

var shadowClearLines = map[string]string{
	"over_control":         "Over-Control State cleared — released grip",
	"isolation_spiral":     "Isolation Spiral cleared — reconnected",
	"intensity_addiction":  "Intensity Addiction cleared — found depth without drama",
	"false_responsibility": "False Responsibility cleared — put down what wasn't mine",
}

var skillIcons = map[string]string{
	"gordian_cut":           "⚔",
	"decisive_intervention": "→",
	"galvanic_surge":        "↑",
	"sovereign_yield":       "~",
	"walling":               "▢",
}

var shadowIcons = map[string]string{
	"over_control":         "◉",
	"isolation_spiral":     "○",
	"intensity_addiction":  "△",
	"false_responsibility": "▽",
}

var typeIcons = map[journal.EntryType]string{
	journal.TypeSovereignty: "◆",
	journal.TypeLoop:        "↻",
	journal.TypeCheckin:     "□",
	journal.TypeNote:        "·",
	journal.TypeSession:     "►",
}

// Format renders an entry for display.
func Format(e journal.Entry) Formatted {
	return Formatted{
		Icon:      icon(e),
		Narrative: narrativeLine(e),
		Note:      e.Note,
		Timestamp: FormatTimestamp(e.Timestamp),
		Raw:       e.Timestamp,
	}
}

// FormatTimestamp renders an instant in the display layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func icon(e journal.Entry) string {
	switch e.Type {
	case journal.TypeSkill:
		if g, ok := skillIcons[e.Action]; ok {
			return g
		}
	case journal.TypeShadow:
		if g, ok := shadowIcons[e.Action]; ok {
			return g
		}
	default:
		if g, ok := typeIcons[e.Type]; ok {
			return g
		}
	}
	return fallbackIcon
}

func narrativeLine(e journal.Entry) string {
	switch e.Type {
	case journal.TypeSkill:
		if line, ok := skillLines[e.Action]; ok {
			return fmt.Sprintf(line, upperIntensity(e.Intensity))
		}

	case journal.TypeShadow:
		if e.SubAction == journal.SubActionClear {
			if line, ok := shadowClearLines[e.Action]; ok {
				return line
			}
		} else if line, ok := shadowSetLines[e.Action]; ok {
			return fmt.Sprintf(line, upperIntensity(e.Intensity))
		}

	case journal.TypeSovereignty:
		if e.Sovereignty != nil {
			line := fmt.Sprintf("Sovereignty adjusted to %d%%", e.Sovereignty.NewValue)
			if e.Sovereignty.OldValue != 0 {
				line += fmt.Sprintf(" (was %d%%)", e.Sovereignty.OldValue)
			}
			return line
		}

	case journal.TypeLoop:
		switch e.Action {
		case journal.ActionPhaseChange:
			if e.Loop != nil {
				return "Loop phase changed to: " + e.Loop.Phase
			}
		case journal.ActionCompleted:
			return "Loop completed — full cycle achieved"
		}

	case journal.TypeCheckin:
		if e.Checkin != nil {
			switch e.Action {
			case "release":
				return "Check-in: Release today? " + e.Checkin.Answer
			case "depletion":
				return "Check-in: Tomorrow depleted? " + e.Checkin.Answer
			case "complete":
				return "Daily check-in completed"
			default:
				return fmt.Sprintf("Check-in: %s %s", e.Action, e.Checkin.Answer)
			}
		}
		if e.Action == "complete" {
			return "Daily check-in completed"
		}

	case journal.TypeNote:
		return "Journal entry"

	case journal.TypeSession:
		if e.Session != nil {
			parts := []string{fmt.Sprintf("Session started — Sovereignty at %d%%", e.Session.Sovereignty)}
			if e.Session.Phase != "" {
				parts = append(parts, "Phase: "+e.Session.Phase)
			}
			if e.Session.ShadowCount == 1 {
				parts = append(parts, "1 shadow active")
			} else if e.Session.ShadowCount > 1 {
				parts = append(parts, fmt.Sprintf("%d shadows active", e.Session.ShadowCount))
			}
			return strings.Join(parts, ", ")
		}
	}

	return genericLine(e)
}

// genericLine is the required fallback for unmapped (type, action)
// combinations, including entry types from future schema versions.
func genericLine(e journal.Entry) string {
	intensity := "n/a"
	if e.Intensity != journal.IntensityNone {
		intensity = string(e.Intensity)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Action, intensity)
}

func upperIntensity(i journal.Intensity) string {
	return strings.ToUpper(string(i))
}
