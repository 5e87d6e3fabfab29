package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available fixed-point types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(rootOpts, cmd)
		},
	}
}

func runTypes(opts *RootOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	names := kindNames()
	infos := make([]TypeInfo, len(names))
	for i, name := range names {
		infos[i] = kinds[name].Info()
	}

	if out.Format == "json" {
		return out.Success(infos)
	}
	for _, ti := range infos {
		sign := "unsigned"
		if ti.Signed {
			sign = "signed"
		}
		if _, err := fmt.Fprintf(out.Writer, "%-7s %-8s %s .. %s (step %s)\n",
			ti.Name, sign, ti.Min, ti.Max, ti.Delta); err != nil {
			return err
		}
	}
	return nil
}
