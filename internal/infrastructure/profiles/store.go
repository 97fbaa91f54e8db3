// Package profiles implements the filesystem profile store.
package profiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/config"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// Ensure interface compliance
var _ ports.ProfileStore = (*Store)(nil)

// Store resolves profile sources as filesystem paths. Relative sources are
// tried as-is first, then under the configured profile directory.
type Store struct {
	profileDir string
}

// NewStore creates a profile store rooted at the given directory.
func NewStore(profileDir string) *Store {
	return &Store{profileDir: profileDir}
}

// Resolve loads and validates the profile at the given source path.
// Every failure mode, missing file included, surfaces as
// *entities.InvalidProfileError so callers need only one check.
func (s *Store) Resolve(_ context.Context, source string) (*config.Profile, error) {
	path, err := s.locate(source)
	if err != nil {
		return nil, &entities.InvalidProfileError{Source: source, Cause: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &entities.InvalidProfileError{Source: source, Cause: err}
	}

	// Schema pass over the raw document first, then the typed decode and
	// the structural checks.
	if err := config.ValidateDocument(raw); err != nil {
		return nil, &entities.InvalidProfileError{Source: source, Cause: err}
	}

	profile, err := config.LoadProfile(path)
	if err != nil {
		return nil, &entities.InvalidProfileError{Source: source, Cause: err}
	}

	if err := config.Validate(profile); err != nil {
		return nil, &entities.InvalidProfileError{Source: source, Cause: err}
	}

	return profile, nil
}

// locate finds the file a source refers to.
func (s *Store) locate(source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("profile source is empty")
	}

	if _, err := os.Stat(source); err == nil {
		return source, nil
	}

	if s.profileDir != "" && !filepath.IsAbs(source) {
		candidate := filepath.Join(s.profileDir, source)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("profile file not found: %s", source)
}
