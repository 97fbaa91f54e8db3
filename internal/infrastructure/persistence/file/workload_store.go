// Package file provides the YAML-file-backed workload table, so
// user-defined workload types survive across CLI invocations.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
	"github.com/tunectl-dev/tunectl/internal/domain/values"
)

// Ensure interface compliance
var _ ports.WorkloadStore = (*WorkloadStore)(nil)

// workloadRecord is the on-disk shape of one user-defined entry.
type workloadRecord struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Profile   string    `yaml:"profile"`
	Source    string    `yaml:"source"`
	DefinedAt time.Time `yaml:"defined_at"`
}

// workloadTable is the file document.
type workloadTable struct {
	Workloads []workloadRecord `yaml:"workloads"`
}

// WorkloadStore persists the user-defined table as a single YAML file,
// rewritten atomically on every save.
type WorkloadStore struct {
	path string
}

// NewWorkloadStore creates a store writing to the given path.
func NewWorkloadStore(path string) *WorkloadStore {
	return &WorkloadStore{path: path}
}

// Load reads the table. A missing file loads as an empty table.
func (s *WorkloadStore) Load(_ context.Context) ([]entities.WorkloadEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workload table: %w", err)
	}

	var table workloadTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse workload table: %w", err)
	}

	entries := make([]entities.WorkloadEntry, 0, len(table.Workloads))
	for _, rec := range table.Workloads {
		name, err := values.NewWorkloadName(rec.Name)
		if err != nil {
			return nil, fmt.Errorf("workload table entry %q: %w", rec.Name, err)
		}

		id, err := uuid.Parse(rec.ID)
		if err != nil {
			id = uuid.New()
		}

		entries = append(entries, entities.WorkloadEntry{
			ID:            id,
			Name:          name,
			ProfileName:   rec.Profile,
			ProfileSource: rec.Source,
			Origin:        entities.OriginUserDefined,
			DefinedAt:     rec.DefinedAt,
		})
	}

	return entries, nil
}

// Save replaces the table file. The write goes through a temp file and a
// rename so a crash never leaves a truncated table behind.
func (s *WorkloadStore) Save(_ context.Context, entries []entities.WorkloadEntry) error {
	table := workloadTable{
		Workloads: make([]workloadRecord, 0, len(entries)),
	}
	for _, e := range entries {
		table.Workloads = append(table.Workloads, workloadRecord{
			ID:        e.ID.String(),
			Name:      e.Name.String(),
			Profile:   e.ProfileName,
			Source:    e.ProfileSource,
			DefinedAt: e.DefinedAt,
		})
	}

	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode workload table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".workloads-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write workload table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close workload table: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace workload table: %w", err)
	}

	return nil
}
