package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sovhud/internal/journal"
)

// LogOptions holds flags shared by the log subcommands.
type LogOptions struct {
	*RootOptions
	Intensity string
	Note      string
}

// NewLogCommand creates the log command and its per-type subcommands.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record an activity journal entry",
		Long: `Record one entry in the activity journal.

Each subcommand maps to one collaborator operation: skill activations,
shadow set/clear, sovereignty changes, loop phases, check-in answers,
manual notes, and session starts.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Note, "note", "", "free-text annotation")

	cmd.AddCommand(newLogSkillCommand(opts))
	cmd.AddCommand(newLogShadowCommand(opts))
	cmd.AddCommand(newLogSovereigntyCommand(opts))
	cmd.AddCommand(newLogPhaseCommand(opts))
	cmd.AddCommand(newLogCompleteCommand(opts))
	cmd.AddCommand(newLogCheckinCommand(opts))
	cmd.AddCommand(newLogNoteCommand(opts))
	cmd.AddCommand(newLogSessionCommand(opts))

	return cmd
}

func newLogSkillCommand(opts *LogOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill <skill-id>",
		Short: "Record a skill activation",
		Example: `  sovhud log skill walling --intensity low --note "put down the launch worry"
  sovhud log skill sovereign_yield --intensity high`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intensity, err := parseIntensity(opts.Intensity, true)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid intensity", err)
			}
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogSkill(cmd.Context(), args[0], intensity, opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
	cmd.Flags().StringVar(&opts.Intensity, "intensity", "med", "activation intensity (low|med|high)")
	return cmd
}

func newLogShadowCommand(opts *LogOptions) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "shadow <shadow-id>",
		Short: "Record a shadow being set or cleared",
		Example: `  sovhud log shadow over_control --intensity high
  sovhud log shadow over_control --clear --note "released the grip"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intensity := journal.IntensityNone
			if !clear {
				var err error
				intensity, err = parseIntensity(opts.Intensity, true)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid intensity", err)
				}
			}
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogShadow(cmd.Context(), args[0], intensity, opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
	cmd.Flags().StringVar(&opts.Intensity, "intensity", "med", "detection intensity (low|med|high)")
	cmd.Flags().BoolVar(&clear, "clear", false, "clear the shadow instead of setting it")
	return cmd
}

func newLogSovereigntyCommand(opts *LogOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sovereignty <new> <old>",
		Short:         "Record a sovereignty change",
		Example:       `  sovhud log sovereignty 45 80 --note "board meeting ran three hours"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			newValue, err := parsePercent(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid new value", err)
			}
			oldValue, err := parsePercent(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid old value", err)
			}
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogSovereignty(cmd.Context(), newValue, oldValue, opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
	return cmd
}

func newLogPhaseCommand(opts *LogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "phase <name>",
		Short:         "Record a loop phase change",
		Example:       `  sovhud log phase Release`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogLoopPhase(cmd.Context(), args[0], opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
}

func newLogCompleteCommand(opts *LogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "complete",
		Short:         "Record a full loop completion",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogLoopComplete(cmd.Context(), opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
}

func newLogCheckinCommand(opts *LogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "checkin <question> <answer>",
		Short:         "Record a check-in answer",
		Example:       `  sovhud log checkin release "Yes — closed the laptop at six"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogCheckin(cmd.Context(), args[0], args[1], opts.Note)
				return id, entryResult{ID: id}
			})
		},
	}
}

func newLogNoteCommand(opts *LogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "note <text>",
		Short:         "Record a manual journal note",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogManualNote(cmd.Context(), args[0])
				return id, entryResult{ID: id}
			})
		},
	}
}

func newLogSessionCommand(opts *LogOptions) *cobra.Command {
	var (
		sovereignty int
		phase       string
		shadows     []string
	)
	cmd := &cobra.Command{
		Use:           "session",
		Short:         "Record a session start snapshot",
		Example:       `  sovhud log session --sovereignty 65 --phase Holding --shadow over_control=med`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			shadowMap, err := parseShadowStates(shadows)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid shadow state", err)
			}
			return withSession(cmd, opts.RootOptions, func(s *session) (string, any) {
				id := s.journal.LogSessionStart(cmd.Context(), sovereignty, phase, shadowMap)
				return id, entryResult{ID: id}
			})
		},
	}
	cmd.Flags().IntVar(&sovereignty, "sovereignty", 50, "sovereignty level at session start (0-100)")
	cmd.Flags().StringVar(&phase, "phase", "", "current loop phase, if known")
	cmd.Flags().StringArrayVar(&shadows, "shadow", nil, "active shadow as id=intensity (repeatable)")
	return cmd
}

// entryResult is the JSON payload for a successful log operation.
type entryResult struct {
	ID string `json:"id"`
}

// withSession opens the database, runs the operation, and prints the
// resulting entry ID in the configured format.
func withSession(cmd *cobra.Command, opts *RootOptions, fn func(*session) (string, any)) error {
	s, err := openSession(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer s.Close()

	id, payload := fn(s)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.JSON(payload)
	}
	out.Text("logged %s", id)
	return nil
}

func parseIntensity(s string, required bool) (journal.Intensity, error) {
	switch journal.Intensity(s) {
	case journal.IntensityLow, journal.IntensityMed, journal.IntensityHigh:
		return journal.Intensity(s), nil
	case journal.IntensityNone:
		if !required {
			return journal.IntensityNone, nil
		}
	}
	return journal.IntensityNone, fmt.Errorf("%q is not one of low, med, high", s)
}

func parsePercent(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%d is outside [0, 100]", v)
	}
	return v, nil
}

func parseShadowStates(pairs []string) (map[string]journal.Intensity, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]journal.Intensity, len(pairs))
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		if !ok || id == "" || raw == "" {
			return nil, fmt.Errorf("%q is not id=intensity", pair)
		}
		intensity, err := parseIntensity(raw, true)
		if err != nil {
			return nil, err
		}
		out[id] = intensity
	}
	return out, nil
}
