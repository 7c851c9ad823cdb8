package cli

import (
	"github.com/spf13/cobra"

	"sovhud/internal/narrative"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Limit int
}

// listEntry is the JSON projection of one formatted entry.
type listEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Icon      string `json:"icon"`
	Narrative string `json:"narrative"`
	Note      string `json:"note,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show journal entries, newest first",
		Example: `  sovhud list
  sovhud list --limit 20 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer s.Close()

			entries := s.journal.Entries()
			if opts.Limit > 0 && len(entries) > opts.Limit {
				entries = entries[:opts.Limit]
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				list := make([]listEntry, 0, len(entries))
				for _, e := range entries {
					f := narrative.Format(e)
					list = append(list, listEntry{
						ID:        e.ID,
						Timestamp: f.Timestamp,
						Icon:      f.Icon,
						Narrative: f.Narrative,
						Note:      f.Note,
					})
				}
				return out.JSON(list)
			}

			for _, e := range entries {
				f := narrative.Format(e)
				out.Text("%s  %s %s", f.Timestamp, f.Icon, f.Narrative)
				if f.Note != "" {
					out.Text("   \"%s\"", f.Note)
				}
				if opts.Verbose {
					out.Text("   id=%s", e.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to show (0 = all)")
	return cmd
}
