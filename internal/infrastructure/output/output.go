// Package output renders registry listings in the supported CLI formats.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// Row is one rendered workload entry.
type Row struct {
	Name      string    `json:"name" yaml:"name"`
	Profile   string    `json:"profile" yaml:"profile"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	Origin    string    `json:"origin" yaml:"origin"`
	DefinedAt time.Time `json:"defined_at,omitzero" yaml:"defined_at,omitempty"`
}

// Listing is the renderable form of the workload table.
type Listing struct {
	Workloads []Row `json:"workloads" yaml:"workloads"`
}

// NewListing converts registry entries into a listing.
func NewListing(entries []entities.WorkloadEntry) *Listing {
	listing := &Listing{Workloads: make([]Row, 0, len(entries))}
	for _, e := range entries {
		listing.Workloads = append(listing.Workloads, Row{
			Name:      e.Name.String(),
			Profile:   e.ProfileName,
			Source:    e.ProfileSource,
			Origin:    string(e.Origin),
			DefinedAt: e.DefinedAt,
		})
	}
	return listing
}

// Formatter renders a listing to its writer.
type Formatter interface {
	Format(listing *Listing) error
}

// NewFormatter returns the formatter for the requested format.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (valid: table, json, yaml)", format)
	}
}
