// Package entities defines the core domain model of the workload registry.
package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/tunectl-dev/tunectl/internal/domain/values"
)

// Origin describes where a workload entry came from.
// It is fixed at creation time and never changes afterwards.
type Origin string

const (
	// OriginBuiltin marks entries shipped with the system. They are
	// immutable and can never be removed.
	OriginBuiltin Origin = "builtin"
	// OriginUserDefined marks entries created by a user via define.
	OriginUserDefined Origin = "user-defined"
)

// IsValid reports whether the origin is a known value.
func (o Origin) IsValid() bool {
	return o == OriginBuiltin || o == OriginUserDefined
}

// WorkloadEntry binds a workload type name to a tuning profile.
type WorkloadEntry struct {
	ID            uuid.UUID           `yaml:"id" json:"id"`
	Name          values.WorkloadName `yaml:"-" json:"-"`
	ProfileName   string              `yaml:"profile" json:"profile"`
	ProfileSource string              `yaml:"source" json:"source"`
	Origin        Origin              `yaml:"origin" json:"origin"`
	DefinedAt     time.Time           `yaml:"defined_at" json:"defined_at"`
}

// NewUserWorkload creates a user-defined entry for the given name.
func NewUserWorkload(name values.WorkloadName, profileName, profileSource string) WorkloadEntry {
	return WorkloadEntry{
		ID:            uuid.New(),
		Name:          name,
		ProfileName:   profileName,
		ProfileSource: profileSource,
		Origin:        OriginUserDefined,
		DefinedAt:     time.Now(),
	}
}

// NewBuiltinWorkload creates a builtin entry. Builtins are seeded once at
// registry construction.
func NewBuiltinWorkload(name values.WorkloadName, profileName, profileSource string) WorkloadEntry {
	return WorkloadEntry{
		ID:            uuid.New(),
		Name:          name,
		ProfileName:   profileName,
		ProfileSource: profileSource,
		Origin:        OriginBuiltin,
		DefinedAt:     time.Now(),
	}
}

// IsBuiltin reports whether the entry shipped with the system.
func (e WorkloadEntry) IsBuiltin() bool {
	return e.Origin == OriginBuiltin
}
