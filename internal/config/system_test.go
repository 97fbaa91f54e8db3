package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSystemConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadSystemConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.StateDir)
	assert.NotEmpty(t, cfg.ProfileDir)
	assert.NotEmpty(t, cfg.BuiltinWorkloads)

	names := make(map[string]bool)
	for _, b := range cfg.BuiltinWorkloads {
		names[b.Name] = true
	}
	assert.True(t, names["default"])
	assert.True(t, names["webserver"])
}

func TestLoadSystemConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
state_dir: /tmp/tunectl-state
profile_dir: /tmp/tunectl-profiles
builtin_workloads:
  - name: hpc
    profile: hpc_profile
    source: hpc.yaml
`), 0o644))

	cfg, err := LoadSystemConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tunectl-state", cfg.StateDir)
	assert.Equal(t, "/tmp/tunectl-profiles", cfg.ProfileDir)
	require.Len(t, cfg.BuiltinWorkloads, 1)
	assert.Equal(t, "hpc", cfg.BuiltinWorkloads[0].Name)

	assert.Equal(t, filepath.Join("/tmp/tunectl-state", "workloads.yaml"), cfg.WorkloadTablePath())
	assert.Equal(t, filepath.Join("/tmp/tunectl-state", "hugepage.flag"), cfg.HugepageMarkerPath())
}

func TestLoadSystemConfig_PartialFileFilled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("state_dir: /tmp/only-state\n"), 0o644))

	cfg, err := LoadSystemConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/only-state", cfg.StateDir)
	assert.NotEmpty(t, cfg.ProfileDir, "profile dir falls back to default")
	assert.NotEmpty(t, cfg.BuiltinWorkloads, "builtin table falls back to default")
}

func TestLoadSystemConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("state_dir: [broken"), 0o644))

	_, err := LoadSystemConfig(path)
	require.Error(t, err)
}
