// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations; the composition root wires
// them together.
package ports

import (
	"context"

	"github.com/tunectl-dev/tunectl/internal/config"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// ProfileStore resolves a profile source reference to a parsed, validated
// profile definition. A source that does not resolve yields
// *entities.InvalidProfileError.
type ProfileStore interface {
	Resolve(ctx context.Context, source string) (*config.Profile, error)
}

// WorkloadStore persists the user-defined workload table across CLI
// invocations.
type WorkloadStore interface {
	// Load returns the stored user-defined entries in insertion order.
	// A missing table is not an error; it loads empty.
	Load(ctx context.Context) ([]entities.WorkloadEntry, error)
	// Save replaces the stored table with the given entries.
	Save(ctx context.Context, entries []entities.WorkloadEntry) error
}

// Prober collects one category of host facts, keyed for the classifier's
// expression environment.
type Prober interface {
	// Name identifies the probe in logs and fact listings.
	Name() string
	// Collect reads the live system state.
	Collect(ctx context.Context) (map[string]interface{}, error)
}

// Prompter asks the user for confirmation on an interactive terminal.
type Prompter interface {
	IsInteractive() bool
	Confirm(title, description string) (bool, error)
}
