package values

import (
	"fmt"
	"regexp"
	"strings"
)

// Workload names are alphanumeric with dashes, underscores and dots.
var workloadNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// WorkloadName represents a validated workload type identifier.
// Enforces non-empty, trimmed names with a restricted charset.
type WorkloadName struct {
	value string
}

// NewWorkloadName creates a WorkloadName with validation
func NewWorkloadName(name string) (WorkloadName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return WorkloadName{}, fmt.Errorf("workload name cannot be empty")
	}
	if !workloadNamePattern.MatchString(name) {
		return WorkloadName{}, fmt.Errorf("workload name %q is invalid (must be alphanumeric with dashes/underscores/dots)", name)
	}
	return WorkloadName{value: name}, nil
}

// MustNewWorkloadName creates a WorkloadName or panics
func MustNewWorkloadName(name string) WorkloadName {
	wn, err := NewWorkloadName(name)
	if err != nil {
		panic(err)
	}
	return wn
}

// String returns the string representation
func (n WorkloadName) String() string {
	return n.value
}

// IsEmpty returns true if this is the zero value
func (n WorkloadName) IsEmpty() bool {
	return n.value == ""
}

// Equals checks if two workload names are equal
func (n WorkloadName) Equals(other WorkloadName) bool {
	return n.value == other.value
}
