package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCollectCmd())
}

func newCollectCmd() *cobra.Command {
	var interfaces []string

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect host facts from the system probes",
		Long: `Run the system probes (interface MTU, huge-page configuration) and
print the collected facts. The same facts feed workload classification.`,
		Example: `  tunectl collect
  tunectl collect --interface eth0`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			facts, err := ctx.Container.Collector(interfaces...).Collect(ctx.Context)
			if err != nil {
				return fmt.Errorf("fact collection failed: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "FACT\tVALUE")
			for _, key := range sortedKeys(facts) {
				switch v := facts[key].(type) {
				case map[string]interface{}:
					for _, sub := range sortedKeys(v) {
						fmt.Fprintf(w, "%s.%s\t%v\n", key, sub, v[sub])
					}
				default:
					fmt.Fprintf(w, "%s\t%v\n", key, v)
				}
			}
			return w.Flush()
		}),
	}

	cmd.Flags().StringSliceVar(&interfaces, "interface", nil,
		"Only probe the given network interface (repeatable)")

	return cmd
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
