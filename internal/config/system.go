package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// SystemConfig represents the global configuration file
// (~/.tunectl/config.yaml).
type SystemConfig struct {
	// StateDir holds mutable state: the user-defined workload table and
	// probe marker files.
	StateDir string `yaml:"state_dir"`

	// ProfileDir is where shipped profiles live.
	ProfileDir string `yaml:"profile_dir"`

	// BuiltinWorkloads seeds the registry. The list is configuration, not
	// code: sites can ship their own table.
	BuiltinWorkloads []BuiltinWorkload `yaml:"builtin_workloads"`
}

// BuiltinWorkload is one seeded workload-type entry.
type BuiltinWorkload struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile"`
	Source  string `yaml:"source,omitempty"`
}

// DefaultBuiltinWorkloads is the seed table used when the system config
// does not provide one. It matches the profiles shipped under ProfileDir.
func DefaultBuiltinWorkloads(profileDir string) []BuiltinWorkload {
	names := []string{
		"default",
		"webserver",
		"big_database",
		"in_memory_database",
		"compute_intensive",
		"throughput_network",
	}
	workloads := make([]BuiltinWorkload, 0, len(names))
	for _, n := range names {
		workloads = append(workloads, BuiltinWorkload{
			Name:    n,
			Profile: n,
			Source:  filepath.Join(profileDir, n+".yaml"),
		})
	}
	return workloads
}

// LoadSystemConfig loads the system configuration from the specified path.
// If the file does not exist, it returns the default config without error.
func LoadSystemConfig(path string) (*SystemConfig, error) {
	config := defaultSystemConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if config.StateDir == "" {
		config.StateDir = defaultSystemConfig().StateDir
	}
	if config.ProfileDir == "" {
		config.ProfileDir = defaultSystemConfig().ProfileDir
	}
	if len(config.BuiltinWorkloads) == 0 {
		config.BuiltinWorkloads = DefaultBuiltinWorkloads(config.ProfileDir)
	}

	return config, nil
}

// defaultSystemConfig builds the fallback configuration rooted in the
// user's home directory.
func defaultSystemConfig() *SystemConfig {
	base := "/var/lib/tunectl"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".tunectl")
	}
	profileDir := filepath.Join(base, "profiles")
	return &SystemConfig{
		StateDir:         filepath.Join(base, "state"),
		ProfileDir:       profileDir,
		BuiltinWorkloads: DefaultBuiltinWorkloads(profileDir),
	}
}

// WorkloadTablePath returns where the user-defined workload table is
// persisted.
func (sc *SystemConfig) WorkloadTablePath() string {
	return filepath.Join(sc.StateDir, "workloads.yaml")
}

// HugepageMarkerPath returns the fixed marker file path used by the
// huge-page probe cache.
func (sc *SystemConfig) HugepageMarkerPath() string {
	return filepath.Join(sc.StateDir, "hugepage.flag")
}
