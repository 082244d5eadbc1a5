package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"docker-tui/internal/types"
)

// programSurface forwards spinner drawing to the running program as messages, so the
// spinner goroutine never touches model state directly
type programSurface struct {
	program *tea.Program
}

func (s *programSurface) DrawAt(row, col int, text string) {
	s.program.Send(types.SpinnerFrameMsg{Row: row, Col: col, Text: text})
}

func (s *programSurface) Clear() {
	s.program.Send(types.SpinnerClearMsg{})
}

// nopSurface discards drawing; used until a program is attached
type nopSurface struct{}

func (nopSurface) DrawAt(row, col int, text string) {}

func (nopSurface) Clear() {}
