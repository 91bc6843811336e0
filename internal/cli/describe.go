package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/bindset"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [bind-file]",
		Short: "Print the reverse index of a bind file",
		Long: `Print every input code used by a bind file together with the action,
binding and slot that read it, sorted by code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.bindFile(args)
			if err != nil {
				return err
			}
			return runDescribe(cmd, rootOpts, path)
		},
	}
}

func runDescribe(cmd *cobra.Command, opts *RootOptions, path string) error {
	set, err := bindset.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading bind file", err)
	}
	binds, err := set.Compile()
	if err != nil {
		return WrapExitError(ExitFailure, "compiling bind file", err)
	}
	m, err := input.New(binds, input.WithLogger(opts.Logger))
	if err != nil {
		return WrapExitError(ExitFailure, "building action map", err)
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tACTION\tBINDING\tSLOT")
	for _, c := range m.Codes() {
		for _, sub := range m.Subscriptions(c) {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", c, sub.Action, sub.Binding, sub.Slot)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, a := range set.Actions {
		if len(a.Binds) == 0 {
			fmt.Fprintf(out, "unbound: %s\n", a.Action)
		}
	}
	return nil
}
