package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunectl-dev/tunectl/internal/version"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			info := version.Get()
			if full {
				fmt.Println(info.Full())
				return
			}
			fmt.Printf("tunectl version %s\n", info.String())
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print full build information")

	return cmd
}
