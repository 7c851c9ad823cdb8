package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"sovhud/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Out    string
	Stdout bool
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal and its reading as a text document",
		Example: `  sovhud export
  sovhud export --out ~/notes/journal.txt
  sovhud export --stdout`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.RootOptions)
			if err != nil {
				return err
			}
			defer s.Close()

			now := time.Now()
			doc := export.Text(s.journal.Entries(), s.catalog, now)

			if opts.Stdout {
				_, err := cmd.OutOrStdout().Write([]byte(doc))
				return err
			}

			path := opts.Out
			if path == "" {
				path = export.Filename(now)
			}
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return WrapExitError(ExitCommandError, "failed to write export", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return out.JSON(map[string]any{"path": path, "entries": s.journal.Len()})
			}
			out.Text("exported %d entries to %s", s.journal.Len(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "output path (default sovereign-architect-log-<date>.txt)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "write the document to stdout instead of a file")
	return cmd
}
