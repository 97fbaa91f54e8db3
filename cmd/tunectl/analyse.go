package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAnalyseCmd())
}

func newAnalyseCmd() *cobra.Command {
	var interfaces []string

	cmd := &cobra.Command{
		Use:   "analyse",
		Short: "Classify the host against the workload table",
		Long: `Collect host facts and evaluate every workload type's selection rule
against them. Matching workload types are listed by weight; the heaviest
match is the recommendation.`,
		Example: `  tunectl analyse`,
		Args:    cobra.NoArgs,
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			facts, err := ctx.Container.Collector(interfaces...).Collect(ctx.Context)
			if err != nil {
				return fmt.Errorf("fact collection failed: %w", err)
			}

			entries := ctx.Container.RegistryService().List(ctx.Context)
			candidates := ctx.Container.Classifier().Rank(ctx.Context, entries, facts)

			if len(candidates) == 0 {
				fmt.Println("No workload type matched the host facts.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "WORKLOAD\tPROFILE\tWEIGHT")
			for _, c := range candidates {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.Name, c.Profile, c.Weight)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\nRecommended workload type: %s (profile %s)\n",
				candidates[0].Name, candidates[0].Profile)
			return nil
		}),
	}

	cmd.Flags().StringSliceVar(&interfaces, "interface", nil,
		"Only probe the given network interface (repeatable)")

	return cmd
}
