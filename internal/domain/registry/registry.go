// Package registry implements the workload-type table: the set of builtin
// and user-defined workload entries with uniqueness-checked mutation.
package registry

import (
	"sync"

	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// RemoveOutcome tags the result of a Remove call. The CLI boundary decides
// how each variant maps to exit status and message text; the registry only
// reports what happened.
type RemoveOutcome int

const (
	// Removed means the entry was user-defined and has been deleted.
	Removed RemoveOutcome = iota
	// RejectedBuiltin means the target is a builtin entry. Nothing was
	// mutated.
	RejectedBuiltin
	// RejectedNotFound means no entry with that name exists. Nothing was
	// mutated.
	RejectedNotFound
)

// String returns a short label for the outcome.
func (o RemoveOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case RejectedBuiltin:
		return "rejected-builtin"
	case RejectedNotFound:
		return "rejected-not-found"
	default:
		return "unknown"
	}
}

// RemoveResult carries the outcome of a Remove call along with the affected
// entry when one existed.
type RemoveResult struct {
	Outcome RemoveOutcome
	Entry   *entities.WorkloadEntry
}

// Registry owns the workload-type table. Builtins are seeded at
// construction and are immutable for the process lifetime; user-defined
// entries come and go through Define and Remove. All mutation is serialized
// behind a single RWMutex so the uniqueness invariant holds; List may run
// concurrently with itself.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]entities.WorkloadEntry
	builtins []string // seed order
	defined  []string // insertion order
}

// New creates a registry seeded with the given builtin entries. Builtins
// with duplicate or invalid names are skipped rather than failing the whole
// table; workloads are independent of each other.
func New(builtins []entities.WorkloadEntry) *Registry {
	r := &Registry{
		byName: make(map[string]entities.WorkloadEntry, len(builtins)),
	}
	for _, b := range builtins {
		name := b.Name.String()
		if name == "" {
			continue
		}
		if _, exists := r.byName[name]; exists {
			continue
		}
		b.Origin = entities.OriginBuiltin
		r.byName[name] = b
		r.builtins = append(r.builtins, name)
	}
	return r
}

// Define inserts a user-defined entry. Returns AlreadyExistsError when the
// name collides with any existing entry, builtin or user-defined.
func (r *Registry) Define(entry entities.WorkloadEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := entry.Name.String()
	if existing, exists := r.byName[name]; exists {
		return &entities.AlreadyExistsError{Name: name, Origin: existing.Origin}
	}

	entry.Origin = entities.OriginUserDefined
	r.byName[name] = entry
	r.defined = append(r.defined, name)
	return nil
}

// Replace rebinds an existing user-defined entry to a new profile. Builtins
// cannot be replaced; a missing name is reported as NotFoundError.
func (r *Registry) Replace(entry entities.WorkloadEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := entry.Name.String()
	existing, exists := r.byName[name]
	if !exists {
		return &entities.NotFoundError{Name: name}
	}
	if existing.IsBuiltin() {
		return &entities.AlreadyExistsError{Name: name, Origin: entities.OriginBuiltin}
	}

	// Keep identity and insertion order, rebind the profile.
	entry.ID = existing.ID
	entry.Origin = entities.OriginUserDefined
	r.byName[name] = entry
	return nil
}

// Remove deletes the named user-defined entry. Builtin and absent targets
// are rejected without mutation; the tagged outcome tells them apart.
func (r *Registry) Remove(name string) RemoveResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.byName[name]
	if !exists {
		return RemoveResult{Outcome: RejectedNotFound}
	}
	if entry.IsBuiltin() {
		return RemoveResult{Outcome: RejectedBuiltin, Entry: &entry}
	}

	delete(r.byName, name)
	for i, n := range r.defined {
		if n == name {
			r.defined = append(r.defined[:i], r.defined[i+1:]...)
			break
		}
	}
	return RemoveResult{Outcome: Removed, Entry: &entry}
}

// Get returns the entry with the given name, if present.
func (r *Registry) Get(name string) (entities.WorkloadEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byName[name]
	return entry, ok
}

// List returns all entries, builtins in seed order followed by user-defined
// entries in insertion order. The returned slice is a copy.
func (r *Registry) List() []entities.WorkloadEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.WorkloadEntry, 0, len(r.builtins)+len(r.defined))
	for _, name := range r.builtins {
		out = append(out, r.byName[name])
	}
	for _, name := range r.defined {
		out = append(out, r.byName[name])
	}
	return out
}

// UserDefined returns only the user-defined entries in insertion order.
func (r *Registry) UserDefined() []entities.WorkloadEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.WorkloadEntry, 0, len(r.defined))
	for _, name := range r.defined {
		out = append(out, r.byName[name])
	}
	return out
}
