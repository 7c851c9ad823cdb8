package cli

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"sovhud/internal/analysis"
)

// statsPayload is the JSON projection of the stats panel, combining the
// weekly counts with the derived pattern flags and insights.
type statsPayload struct {
	Stats    analysis.Stats  `json:"stats"`
	Analysis analysis.Result `json:"analysis"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show weekly stats and detected patterns",
		Long: `Show the trailing 7-day stats panel: skill activations, shadow
detections (clears excluded), plus the pattern analyzer's insights.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			entries := s.journal.Entries()
			stats := analysis.ComputeStats(entries, time.Now())
			result := analysis.Analyze(entries)

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return out.JSON(statsPayload{Stats: stats, Analysis: result})
			}

			out.Text("THIS WEEK — %d of %d entries", stats.ThisWeekEntries, stats.TotalEntries)

			if len(stats.SkillCounts) > 0 {
				out.Text("")
				out.Text("Skills used:")
				for _, id := range sortedKeys(stats.SkillCounts) {
					out.Text("  %s: %d", s.catalog.SkillName(id), stats.SkillCounts[id])
				}
			}

			if len(stats.ShadowCounts) > 0 {
				out.Text("")
				out.Text("Shadows detected:")
				for _, id := range sortedKeys(stats.ShadowCounts) {
					out.Text("  %s: %d", s.catalog.ShadowName(id), stats.ShadowCounts[id])
					if antidote := s.catalog.ShadowAntidote(id); antidote != "" {
						out.Text("    antidote: %s", antidote)
					}
				}
			}

			if len(result.Insights) > 0 {
				out.Text("")
				out.Text("Insights:")
				for _, insight := range result.Insights {
					out.Text("  - %s", insight)
				}
			}
			return nil
		},
	}
	return cmd
}

// sortedKeys returns map keys ordered by count descending, then ID
// ascending, so text output is stable.
func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if counts[keys[a]] != counts[keys[b]] {
			return counts[keys[a]] > counts[keys[b]]
		}
		return keys[a] < keys[b]
	})
	return keys
}
