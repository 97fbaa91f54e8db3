// Package container provides dependency injection for the application.
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/application/services"
	"github.com/tunectl-dev/tunectl/internal/config"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
	"github.com/tunectl-dev/tunectl/internal/domain/registry"
	"github.com/tunectl-dev/tunectl/internal/domain/values"
	"github.com/tunectl-dev/tunectl/internal/infrastructure/persistence/file"
	"github.com/tunectl-dev/tunectl/internal/infrastructure/probe"
	"github.com/tunectl-dev/tunectl/internal/infrastructure/profiles"
	"github.com/tunectl-dev/tunectl/internal/infrastructure/prompt"
)

// Container holds all application dependencies.
type Container struct {
	systemCfg       *config.SystemConfig
	registry        *registry.Registry
	profileStore    ports.ProfileStore
	workloadStore   ports.WorkloadStore
	registryService *services.RegistryService
	classifier      *services.Classifier
	prompter        ports.Prompter
	logger          *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
}

// New creates a new dependency injection container. It loads the system
// config, seeds the registry with builtins and hydrates the user-defined
// table from disk.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg, err := config.LoadSystemConfig(opts.SystemConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	profileStore := profiles.NewStore(systemCfg.ProfileDir)
	workloadStore := file.NewWorkloadStore(systemCfg.WorkloadTablePath())

	reg := registry.New(builtinEntries(systemCfg, opts.Logger))

	// Hydrate user-defined entries. A stored entry colliding with a
	// builtin means the seed table changed underneath it; it loses.
	stored, err := workloadStore.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load workload table: %w", err)
	}
	for _, entry := range stored {
		if err := reg.Define(entry); err != nil {
			opts.Logger.Warn("dropping stored workload entry",
				"name", entry.Name.String(), "error", err)
		}
	}

	c := &Container{
		systemCfg:     systemCfg,
		registry:      reg,
		profileStore:  profileStore,
		workloadStore: workloadStore,
		prompter:      prompt.NewTerminalPrompter(),
		logger:        opts.Logger,
	}
	c.registryService = services.NewRegistryService(reg, profileStore, workloadStore, opts.Logger)
	c.classifier = services.NewClassifier(profileStore, opts.Logger)

	return c, nil
}

// builtinEntries converts the configured seed table to domain entries.
func builtinEntries(cfg *config.SystemConfig, logger *slog.Logger) []entities.WorkloadEntry {
	entries := make([]entities.WorkloadEntry, 0, len(cfg.BuiltinWorkloads))
	for _, b := range cfg.BuiltinWorkloads {
		name, err := values.NewWorkloadName(b.Name)
		if err != nil {
			logger.Warn("skipping builtin workload with invalid name",
				"name", b.Name, "error", err)
			continue
		}
		entries = append(entries, entities.NewBuiltinWorkload(name, b.Profile, b.Source))
	}
	return entries
}

// RegistryService returns the workload registry use cases.
func (c *Container) RegistryService() *services.RegistryService {
	return c.registryService
}

// Classifier returns the workload classifier.
func (c *Container) Classifier() *services.Classifier {
	return c.classifier
}

// Collector builds a probe collector. When interfaces are given, the MTU
// probe reads only those.
func (c *Container) Collector(interfaces ...string) *services.Collector {
	probers := []ports.Prober{
		probe.NewMTUProbe(interfaces...),
		probe.NewHugepageProbe(c.systemCfg.HugepageMarkerPath()),
	}
	return services.NewCollector(probers, c.logger)
}

// Prompter returns the interactive terminal prompter.
func (c *Container) Prompter() ports.Prompter {
	return c.prompter
}

// Registry returns the underlying workload registry.
func (c *Container) Registry() *registry.Registry {
	return c.registry
}

// SystemConfig returns the loaded system configuration.
func (c *Container) SystemConfig() *config.SystemConfig {
	return c.systemCfg
}
