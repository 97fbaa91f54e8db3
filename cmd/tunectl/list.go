package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tunectl-dev/tunectl/internal/infrastructure/output"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all workload types",
		Long:    `List all workload types in the table, builtin entries first.`,
		Example: `  tunectl list
  tunectl list --format json`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.ValidateFlags()
		},
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			entries := ctx.Container.RegistryService().List(ctx.Context)

			formatter, err := output.NewFormatter(opts.Format, os.Stdout)
			if err != nil {
				return err
			}

			return formatter.Format(output.NewListing(entries))
		}),
	}

	opts.RegisterFlags(cmd)

	return cmd
}
