package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"docker-tui/internal/docker"
	"docker-tui/internal/logger"
	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

// Run shows the interface starting on the screen for mode and returns when the operator is
// done. The terminal is restored on every path. A nil error covers both a successful action
// and an operator cancellation.
func Run(ctx context.Context, engine docker.Engine, spinner *runner.Spinner, mode types.Mode) error {
	m := NewModel(ctx, engine, spinner, mode)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.SetSurface(&programSurface{program: p})

	_, err := p.Run()

	// A spinner action may still be running after an interrupt; stop it and wait for it
	if m.cancelAction != nil {
		m.cancelAction()
	}
	m.Wait()

	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("Cancelled by operator")
			return nil
		}
		return fmt.Errorf("failed to run interface: %w", err)
	}

	if m.Err() != nil {
		return m.Err()
	}
	if m.Done() {
		logger.Info("Action completed", "mode", m.mode)
	}
	return nil
}
