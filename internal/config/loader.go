package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadProfile loads and parses a tuning profile from a YAML file.
// The decode is strict: unknown fields are rejected.
func LoadProfile(path string) (*Profile, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	// resolving symlinks or escaping the intended directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	return LoadProfileFromReader(file)
}

// LoadProfileFromReader loads and parses a profile from an io.Reader.
// This is useful for testing with in-memory YAML data.
func LoadProfileFromReader(r io.Reader) (*Profile, error) {
	var profile Profile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict parsing - reject unknown fields

	if err := decoder.Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &profile, nil
}
