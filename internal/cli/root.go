// Package cli implements the actionmap command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/logging"
)

// DefaultConfigPath is read when --config is not given. A missing file
// means built-in defaults.
const DefaultConfigPath = "actionmap.toml"

// RootOptions holds global flags and the state they produce.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string

	Config *config.Config
	Logger *slog.Logger

	logFile io.Closer
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actionmap",
		Short: "Inspect, check and try out action bind files",
		Long: `actionmap works with bind files: lists of actions, each bound to one
or more chords of keys, mouse buttons, mouse motion, wheel or gamepad input.

Bind files may be TOML, YAML or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return opts.teardown()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", DefaultConfigPath, "config file (TOML or YAML)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (console|text|json)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewFmtCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	// PersistentPostRunE is skipped when RunE fails.
	for _, sub := range cmd.Commands() {
		sub.RunE = opts.withTeardown(sub.RunE)
	}

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, "invalid configuration", err)
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitUsage, "invalid flags", err)
	}
	o.Config = cfg

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return WrapExitError(ExitUsage, "opening log file", err)
		}
		o.logFile = f
		lc.Output = f
	}
	o.Logger = logging.New(lc)
	o.Logger.Debug("configuration loaded", slog.String("source", cfg.Source))
	return nil
}

func (o *RootOptions) teardown() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// withTeardown closes what setup opened once run returns, whether or not
// it failed.
func (o *RootOptions) withTeardown(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if cerr := o.teardown(); err == nil {
			err = cerr
		}
		return err
	}
}

// bindFile picks the bind file from the arguments or the config.
func (o *RootOptions) bindFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if o.Config != nil && o.Config.BindFile != "" {
		return o.Config.BindFile, nil
	}
	return "", NewExitError(ExitUsage, "no bind file given and none configured")
}

// Execute runs the command tree and returns the process exit code.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
