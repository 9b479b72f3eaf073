package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Program runs a Model and unmounts its registry when the program exits,
// whether through the quit key, Quit, Kill or a cancelled context.
type Program struct {
	*tea.Program
	model Model
}

// NewProgram wraps m in a Bubble Tea program bound to the model's context.
func NewProgram(m Model, opts ...tea.ProgramOption) *Program {
	opts = append([]tea.ProgramOption{tea.WithContext(m.ctx)}, opts...)
	return &Program{Program: tea.NewProgram(m, opts...), model: m}
}

// Run blocks until the program exits. A program stopped by its context being
// cancelled is a normal exit.
func (p *Program) Run() error {
	defer p.model.teardown()

	_, err := p.Program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && p.model.ctx.Err() != nil {
		p.model.log.Debug("program stopped by context")
		return nil
	}
	return err
}
