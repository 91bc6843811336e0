package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/actionmap/internal/input/bindset"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [bind-file]",
		Short: "Validate a bind file",
		Long: `Parse every chord of a bind file and report problems.

Actions without binds are reported as warnings; they are legal but can
never be pressed. The exit status is 1 if any chord fails to parse.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.bindFile(args)
			if err != nil {
				return err
			}
			return runCheck(cmd, path)
		},
	}
}

func runCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	set, err := bindset.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading bind file", err)
	}

	warnings, err := set.Validate()
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if err != nil {
		for _, e := range unjoin(err) {
			fmt.Fprintf(out, "error: %v\n", e)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d error(s)", path, len(unjoin(err))))
	}

	chords := 0
	for _, a := range set.Actions {
		chords += len(a.Binds)
	}
	fmt.Fprintf(out, "ok: %s (%d actions, %d chords)\n", set.Name, len(set.Actions), chords)
	return nil
}

// unjoin splits an errors.Join result into its parts.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

