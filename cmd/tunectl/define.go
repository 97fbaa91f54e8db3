package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

func init() {
	rootCmd.AddCommand(newDefineCmd())
}

func newDefineCmd() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "define <name> <profile_name> <profile_file>",
		Short: "Define a new workload type",
		Long: `Define a new workload type bound to a tuning profile. The profile file
is resolved and validated before the workload type is added to the table.
Redefining an existing user-defined workload type requires --update.`,
		Example: `  tunectl define self_workload self_profile ./conf/example.yaml
  tunectl define self_workload other_profile ./conf/other.yaml --update`,
		Args: cobra.ExactArgs(3),
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			name, profileName, profileFile := args[0], args[1], args[2]

			svc := ctx.Container.RegistryService()

			entry, err := svc.Define(ctx.Context, name, profileName, profileFile, update)

			// Without --update a collision with a user-defined entry can
			// still be resolved interactively.
			var existsErr *entities.AlreadyExistsError
			if errors.As(err, &existsErr) && !update && existsErr.Origin == entities.OriginUserDefined {
				prompter := ctx.Container.Prompter()
				if prompter.IsInteractive() {
					confirmed, promptErr := prompter.Confirm(
						fmt.Sprintf("Workload type %s already exists", name),
						fmt.Sprintf("Rebind it to profile %s?", profileName),
					)
					if promptErr != nil {
						return promptErr
					}
					if confirmed {
						entry, err = svc.Define(ctx.Context, name, profileName, profileFile, true)
					}
				}
			}
			if err != nil {
				return err
			}

			fmt.Printf("define workload type %s successfully\n", entry.Name.String())
			return nil
		}),
	}

	cmd.Flags().BoolVar(&update, "update", false,
		"Rebind an existing user-defined workload type")

	return cmd
}
