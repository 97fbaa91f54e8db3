// Package prompt provides interactive terminal confirmation.
package prompt

import (
	"os"

	"github.com/charmbracelet/huh"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
)

// Ensure interface compliance
var _ ports.Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter asks yes/no questions on an interactive terminal.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device means a terminal, not a pipe or file.
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Confirm asks the user a yes/no question, defaulting to no.
func (p *TerminalPrompter) Confirm(title, description string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
