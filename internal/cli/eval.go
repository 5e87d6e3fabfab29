package cli

import (
	"github.com/spf13/cobra"
)

func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Apply + - * or / to two values",
		Long: `Apply a binary operator to two values of the selected type, reporting
overflow according to --policy. Use "x" for multiplication to avoid shell
globbing.`,
		Example: "  fxp eval 1.5 x 2.25\n  fxp eval -t U8F8 -p saturating 200 + 100",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, args[0], args[1], args[2])
		},
	}
}

func runEval(opts *RootOptions, cmd *cobra.Command, a, op, b string) error {
	out := opts.formatter(cmd)

	k, err := lookupKind(opts.Type)
	if err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}
	policy, err := parsePolicy(opts.Policy)
	if err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}
	if err := checkOperator(op); err != nil {
		return out.Fail(ErrCodeArgument, ExitCommandError, err)
	}

	opts.Logger.Debug("eval", "type", opts.Type, "policy", policy, "a", a, "op", op, "b", b)
	res, err := k.Eval(a, op, b, policy)
	if err != nil {
		return out.FailOp(err)
	}
	if res.Overflowed {
		opts.Logger.Debug("result wrapped", "value", res.Value)
	}
	return out.Success(res)
}
