package cli

import (
	"github.com/spf13/cobra"

	"sovhud/internal/reading"
)

// readingPayload is the JSON projection of a generated reading.
type readingPayload struct {
	State   reading.State `json:"state"`
	Arc     reading.Arc   `json:"arc"`
	Reading string        `json:"reading"`
}

// NewReadingCommand creates the reading command.
func NewReadingCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Generate the narrative reading of the full journal",
		Long: `Generate the holistic reading: current state, the arc of how you got
here, one key insight, and a closing. Deterministic for a given journal.`,
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
			text := reading.Generate(entries, s.catalog)

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				state, arc := reading.Classify(entries)
				return out.JSON(readingPayload{State: state, Arc: arc, Reading: text})
			}
			out.Text("%s", text)
			return nil
		},
	}
	return cmd
}
