package cli

import (
	"github.com/spf13/cobra"
)

// NewNoteCommand creates the note command for annotating entries.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "note <entry-id> [text]",
		Short: "Add, edit, or clear an entry's note",
		Example: `  sovhud note 0193c8a2-... "this was the boundary that mattered"
  sovhud note 0193c8a2-... --clear`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			note := ""
			if len(args) == 2 {
				note = args[1]
			}
			if !clear && note == "" {
				return NewExitError(ExitCommandError, "provide note text or --clear")
			}

			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			s.journal.EditNote(cmd.Context(), args[0], note)

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return out.JSON(entryResult{ID: args[0]})
			}
			out.Text("updated %s", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "remove the note")
	return cmd
}

// NewDeleteCommand creates the delete command. Deletion is a hard
// removal; unknown IDs are a silent no-op, matching the store contract.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <entry-id>",
		Short:         "Delete an entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			s.journal.Delete(cmd.Context(), args[0])

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return out.JSON(entryResult{ID: args[0]})
			}
			out.Text("deleted %s", args[0])
			return nil
		},
	}
}

// NewClearCommand creates the clear command. The confirmation lives
// here, in the --force flag: Journal.Clear itself is unconditional.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:           "clear",
		Short:         "Remove all journal entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return NewExitError(ExitCommandError, "clearing the entire journal cannot be undone; pass --force to confirm")
			}

			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			removed := s.journal.Len()
			s.journal.Clear(cmd.Context())

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return out.JSON(map[string]int{"removed": removed})
			}
			out.Text("cleared %d entries", removed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "confirm the destructive clear")
	return cmd
}
