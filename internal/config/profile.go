// Package config provides tuning-profile loading and validation for
// tunectl. It handles YAML parsing, structural validation, and the system
// configuration file.
package config

import (
	"fmt"
)

// Profile represents a complete tuning profile definition.
// Profiles describe the parameters a workload type is tuned with and,
// optionally, a selection rule used for host classification.
type Profile struct {
	Metadata   ProfileMetadata `yaml:"profile"`
	Selection  *Selection      `yaml:"selection,omitempty"`
	Parameters []Parameter     `yaml:"parameters"`
}

// ProfileMetadata contains metadata about the profile.
type ProfileMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// Selection describes when this profile's workload type applies to a host.
// Rule is an expression over collected host facts; Weight breaks ties when
// several rules match.
type Selection struct {
	Rule   string `yaml:"rule"`
	Weight int    `yaml:"weight,omitempty"`
}

// ParamDomain distinguishes continuous from discrete parameters.
type ParamDomain string

const (
	DomainContinuous ParamDomain = "continuous"
	DomainDiscrete   ParamDomain = "discrete"
)

// Parameter is a single tuning knob.
//
// Continuous parameters carry a two-element numeric range and a ref
// (baseline) value inside it. Discrete parameters carry an options list
// that must contain the ref value.
type Parameter struct {
	Name    string        `yaml:"name"`
	Domain  ParamDomain   `yaml:"domain"`
	Dtype   string        `yaml:"dtype,omitempty"` // int, float, string
	Range   []float64     `yaml:"range,omitempty"`
	Options []interface{} `yaml:"options,omitempty"`
	Ref     interface{}   `yaml:"ref"`
}

// Validate checks the consistency of a single parameter.
func (p *Parameter) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}

	switch p.Domain {
	case DomainContinuous:
		if len(p.Range) != 2 {
			return fmt.Errorf("the range of %s must have exactly 2 items", p.Name)
		}
		if p.Range[0] > p.Range[1] {
			return fmt.Errorf("the range of %s is inverted", p.Name)
		}
		ref, ok := numericValue(p.Ref)
		if !ok {
			return fmt.Errorf("the ref value of %s is not numeric", p.Name)
		}
		if ref < p.Range[0] || ref > p.Range[1] {
			return fmt.Errorf("the ref value of %s is out of range", p.Name)
		}
	case DomainDiscrete:
		if len(p.Options) == 0 {
			return fmt.Errorf("parameter %s must list at least one option", p.Name)
		}
		if p.Ref != nil && !containsOption(p.Options, p.Ref) {
			return fmt.Errorf("the ref value of %s is not among its options", p.Name)
		}
	default:
		return fmt.Errorf("parameter %s has unknown domain %q", p.Name, p.Domain)
	}

	return nil
}

// numericValue coerces YAML scalar types to float64.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

// containsOption compares option entries by their printed form, since YAML
// may decode the same scalar as int in one place and string in another.
func containsOption(options []interface{}, ref interface{}) bool {
	refStr := fmt.Sprintf("%v", ref)
	for _, opt := range options {
		if fmt.Sprintf("%v", opt) == refStr {
			return true
		}
	}
	return false
}
