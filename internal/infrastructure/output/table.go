package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TableFormatter formats the listing as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the listing as a table, one entry per line.
func (f *TableFormatter) Format(listing *Listing) error {
	if len(listing.Workloads) == 0 {
		fmt.Fprintln(f.writer, "No workload types defined.")
		return nil
	}

	w := tabwriter.NewWriter(f.writer, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "NAME\tPROFILE\tORIGIN"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range listing.Workloads {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", row.Name, row.Profile, row.Origin); err != nil {
			return fmt.Errorf("failed to write workload row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}
