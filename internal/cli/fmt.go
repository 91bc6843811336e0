package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/actionmap/internal/input/bindset"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	Write  bool
	To     string
	Output string
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt [bind-file]",
		Short: "Rewrite a bind file with canonical chord names",
		Long: `Rewrite every chord of a bind file in its canonical form
("shift+w" becomes "left-shift+w") and print the result.

With --write the file is rewritten in place. With --output the result is
written to another file, whose extension picks the format. --to converts
to another format on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.bindFile(args)
			if err != nil {
				return err
			}
			return runFmt(cmd, opts, path)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "rewrite the file in place")
	cmd.Flags().StringVar(&opts.To, "to", "", "output format for stdout (toml|yaml|json)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func runFmt(cmd *cobra.Command, opts *FmtOptions, path string) error {
	if opts.Write && opts.Output != "" {
		return NewExitError(ExitUsage, "--write and --output are mutually exclusive")
	}

	set, err := bindset.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading bind file", err)
	}
	if _, err := set.Validate(); err != nil {
		return WrapExitError(ExitFailure, "invalid bind file", err)
	}
	set.Normalize()

	target := opts.Output
	if opts.Write {
		target = path
	}
	if target != "" {
		if err := set.Save(target); err != nil {
			return WrapExitError(ExitFailure, "saving bind file", err)
		}
		return nil
	}

	format, err := bindset.FormatFromPath(path)
	if err != nil {
		return WrapExitError(ExitUsage, "detecting format", err)
	}
	if opts.To != "" {
		format = bindset.Format(opts.To)
	}
	data, err := set.Encode(format)
	if err != nil {
		return WrapExitError(ExitUsage, "encoding bind file", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
