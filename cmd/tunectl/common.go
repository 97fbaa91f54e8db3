package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared across the read-only commands.
type CommonOptions struct {
	// Output
	Format string

	// Flags (bools grouped for alignment)
	Quiet bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Format: "table",
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	validFormats := map[string]bool{
		"table": true, "json": true, "yaml": true,
	}
	if !validFormats[opts.Format] {
		return fmt.Errorf("invalid format: %s (valid: table, json, yaml)", opts.Format)
	}

	return nil
}
