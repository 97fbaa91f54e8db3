// Package services contains the application use cases that sit between the
// CLI and the domain.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
	"github.com/tunectl-dev/tunectl/internal/domain/registry"
	"github.com/tunectl-dev/tunectl/internal/domain/values"
)

// RegistryService exposes the workload-registry use cases: define, list and
// undefine. Profile resolution happens before the registry is touched, so a
// bad profile never leaves a half-defined entry behind.
type RegistryService struct {
	registry *registry.Registry
	profiles ports.ProfileStore
	store    ports.WorkloadStore
	logger   *slog.Logger
}

// NewRegistryService creates the service around an already-hydrated
// registry.
func NewRegistryService(
	reg *registry.Registry,
	profiles ports.ProfileStore,
	store ports.WorkloadStore,
	logger *slog.Logger,
) *RegistryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistryService{
		registry: reg,
		profiles: profiles,
		store:    store,
		logger:   logger,
	}
}

// Define creates a user-defined workload entry bound to the given profile.
// With update set, an existing user-defined entry is rebound instead of
// rejected; builtins are never replaceable.
func (s *RegistryService) Define(ctx context.Context, name, profileName, profileSource string, update bool) (*entities.WorkloadEntry, error) {
	workloadName, err := values.NewWorkloadName(name)
	if err != nil {
		return nil, entities.NewUsageError(err.Error())
	}
	if strings.TrimSpace(profileName) == "" {
		return nil, entities.NewUsageError("profile name is required")
	}

	// Resolve the profile first: a source that cannot be resolved must
	// never mutate the table.
	if _, err := s.profiles.Resolve(ctx, profileSource); err != nil {
		return nil, err
	}

	entry := entities.NewUserWorkload(workloadName, profileName, profileSource)

	if update {
		if _, exists := s.registry.Get(workloadName.String()); exists {
			if err := s.registry.Replace(entry); err != nil {
				return nil, err
			}
		} else if err := s.registry.Define(entry); err != nil {
			return nil, err
		}
	} else if err := s.registry.Define(entry); err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("workload type defined",
		"name", workloadName.String(),
		"profile", profileName,
		"source", profileSource)

	return &entry, nil
}

// List returns all registry entries, builtins first.
func (s *RegistryService) List(_ context.Context) []entities.WorkloadEntry {
	return s.registry.List()
}

// Get returns the named entry, if present.
func (s *RegistryService) Get(_ context.Context, name string) (entities.WorkloadEntry, bool) {
	return s.registry.Get(name)
}

// Undefine removes the named user-defined entry. The tagged result reports
// the builtin and not-found rejections without mutating anything; only an
// empty name is an error.
func (s *RegistryService) Undefine(ctx context.Context, name string) (registry.RemoveResult, error) {
	if strings.TrimSpace(name) == "" {
		return registry.RemoveResult{}, entities.NewUsageError("workload type name is required")
	}

	result := s.registry.Remove(name)

	if result.Outcome == registry.Removed {
		if err := s.persist(ctx); err != nil {
			return result, err
		}
		s.logger.Info("workload type removed", "name", name)
	} else {
		s.logger.Debug("undefine rejected", "name", name, "outcome", result.Outcome.String())
	}

	return result, nil
}

// persist writes the current user-defined table through the store.
func (s *RegistryService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.registry.UserDefined()); err != nil {
		return fmt.Errorf("failed to persist workload table: %w", err)
	}
	return nil
}
