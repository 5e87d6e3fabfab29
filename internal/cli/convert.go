package cli

import (
	"github.com/spf13/cobra"
)

func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value>...",
		Short: "Round decimal values to the selected type",
		Long: `Parse each value, rounding to the nearest representable number with ties
to even, and print its canonical form, raw bits and float64 value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, args)
		},
	}
}

func runConvert(opts *RootOptions, cmd *cobra.Command, values []string) error {
	out := opts.formatter(cmd)

	k, err := lookupKind(opts.Type)
	if err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}
	policy, err := parsePolicy(opts.Policy)
	if err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}

	results := make([]Result, 0, len(values))
	for _, v := range values {
		res, err := k.Convert(v, policy)
		if err != nil {
			return out.FailOp(err)
		}
		opts.Logger.Debug("converted", "input", v, "value", res.Value)
		results = append(results, res)
	}

	if out.Format == "json" {
		return out.Success(results)
	}
	for _, res := range results {
		if err := out.Success(res); err != nil {
			return err
		}
	}
	return nil
}
