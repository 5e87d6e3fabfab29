package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string
	Type    string
	Policy  string

	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fxp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	cmd := &cobra.Command{
		Use:   "fxp",
		Short: "fxp - fixed-point calculator",
		Long: `Evaluate, convert and inspect binary fixed-point numbers.

Values are decimal strings. Pass "--" before a negative first operand so it
is not taken for a flag: fxp eval -- -1.5 x 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML file of flag defaults (default $"+ConfigEnv+")")
	cmd.PersistentFlags().StringVarP(&opts.Type, "type", "t", "I16F16", "fixed-point type, see 'fxp types'")
	cmd.PersistentFlags().StringVarP(&opts.Policy, "policy", "p", string(PolicyChecked), "overflow policy (checked|wrapping|saturating|overflowing)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))

	return cmd
}

// setup applies config file defaults to any flag not given on the command
// line, then validates the result.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	path := opts.Config
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return fmt.Errorf("loading config %q: %w", path, err)
		}
		flags := cmd.Flags()
		if cfg.Type != "" && !flags.Changed("type") {
			opts.Type = cfg.Type
		}
		if cfg.Policy != "" && !flags.Changed("policy") {
			opts.Policy = cfg.Policy
		}
		if cfg.Format != "" && !flags.Changed("format") {
			opts.Format = cfg.Format
		}
		if cfg.Verbose && !flags.Changed("verbose") {
			opts.Verbose = true
		}
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if path != "" {
		opts.Logger.Debug("config loaded", "path", path)
	}

	if !isValidFormat(opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}
	if _, err := parsePolicy(opts.Policy); err != nil {
		return err
	}
	if _, err := lookupKind(opts.Type); err != nil {
		return err
	}
	return nil
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
