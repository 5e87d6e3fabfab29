package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type inspectOptions struct {
	dump bool
}

func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <value>",
		Short: "Describe a value and its type",
		Long: `Print a YAML document describing a value: its raw bits, integer and
fractional parts, and the range of its type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, opts, cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "also dump the Go value to stderr")
	return cmd
}

func runInspect(rootOpts *RootOptions, opts *inspectOptions, cmd *cobra.Command, value string) error {
	out := rootOpts.formatter(cmd)

	k, err := lookupKind(rootOpts.Type)
	if err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}

	var insp Inspection
	if opts.dump {
		insp, err = k.Inspect(value, cmd.ErrOrStderr())
	} else {
		insp, err = k.Inspect(value, nil)
	}
	if err != nil {
		return out.FailOp(err)
	}

	if out.Format == "json" {
		return out.Success(insp)
	}
	enc := yaml.NewEncoder(out.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(insp); err != nil {
		return err
	}
	return enc.Close()
}
