package analysis

import (
	"time"

	"sovhud/internal/journal"
)

// statsWindow is the trailing window for "this week" counts. Sliding, not
// calendar-aligned.
const statsWindow = 7 * 24 * time.Hour

// Stats summarizes recent journal activity for the stats panel.
type Stats struct {
	TotalEntries    int            `json:"total_entries"`
	ThisWeekEntries int            `json:"this_week_entries"`
	SkillCounts     map[string]int `json:"skill_counts"`
	ShadowCounts    map[string]int `json:"shadow_counts"`
}

// ComputeStats counts entries inside the trailing 7-day window ending at
// now. Skill entries count once per activation, keyed by skill ID. Shadow
// entries count only when the shadow was set - clears are not detections.
func ComputeStats(entries []journal.Entry, now time.Time) Stats {
	stats := Stats{
		TotalEntries: len(entries),
		SkillCounts:  map[string]int{},
		ShadowCounts: map[string]int{},
	}

	cutoff := now.Add(-statsWindow)
	for _, e := range entries {
		if !e.Timestamp.After(cutoff) {
			continue
		}
		stats.ThisWeekEntries++

		switch {
		case e.Type == journal.TypeSkill:
			stats.SkillCounts[e.Action]++
		case e.Type == journal.TypeShadow && e.SubAction == journal.SubActionSet:
			stats.ShadowCounts[e.Action]++
		}
	}

	return stats
}
