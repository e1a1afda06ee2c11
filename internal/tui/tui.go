package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram wraps m in a program on the alternate screen.
func NewProgram(m Model, opts ...tea.ProgramOption) *Program {
	allOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(m, allOpts...)
}

// Run blocks until the user quits.
func Run(p *Program) error {
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
