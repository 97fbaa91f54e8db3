package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunectl-dev/tunectl/internal/domain/registry"
)

func init() {
	rootCmd.AddCommand(newUndefineCmd())
}

func newUndefineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undefine <name>",
		Short: "Delete a user-defined workload type",
		Long: `Delete a workload type from the table. Only self defined workload types
can be deleted; builtin workload types are kept. Asking for a name that is
not in the table is reported but is not an error.`,
		Example: `  tunectl undefine self_workload`,
		Args:    cobra.MaximumNArgs(1),
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			// An empty name is the only hard failure here. Builtin and
			// absent targets are reported on stdout and exit zero.
			result, err := ctx.Container.RegistryService().Undefine(ctx.Context, name)
			if err != nil {
				return err
			}

			fmt.Println(undefineMessage(result.Outcome, name))
			return nil
		}),
	}

	return cmd
}

// undefineMessage renders the outcome tag for the terminal. Rejections are
// worded, not errored: the exit status stays zero either way.
func undefineMessage(outcome registry.RemoveOutcome, name string) string {
	switch outcome {
	case registry.Removed:
		return fmt.Sprintf("undefine workload type %s successfully", name)
	case registry.RejectedBuiltin:
		return fmt.Sprintf("workload type %s is builtin, only self defined workload type can be deleted", name)
	case registry.RejectedNotFound:
		return fmt.Sprintf("workload type %s may be not exist in the table", name)
	default:
		return fmt.Sprintf("workload type %s: unknown outcome", name)
	}
}
