package output

import (
	"io"

	"github.com/goccy/go-yaml"
)

// YAMLFormatter formats the listing as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the listing as YAML.
func (f *YAMLFormatter) Format(listing *Listing) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(listing); err != nil {
		return err
	}

	return encoder.Close()
}
