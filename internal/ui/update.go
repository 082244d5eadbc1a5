package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docker-tui/internal/components"
	"docker-tui/internal/docker"
	"docker-tui/internal/types"
)

// Update handles all state transitions
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case types.ContainerListMsg:
		if msg.Seq != m.seq || m.state != types.StateContainerAction {
			return m, nil
		}
		m.containers = msg.Containers
		m.loading = false
		m.clampSelection()
		return m, nil

	case types.NetworkListMsg:
		if msg.Seq != m.seq || m.state != types.StateNetworkAction {
			return m, nil
		}
		m.members = msg.Members
		m.groups = docker.GroupByNetwork(msg.Members)
		m.loading = false
		if len(msg.Diagnostics) > 0 && m.statusMessage == "" {
			m.statusMessage = strings.Join(msg.Diagnostics, "; ")
		}
		m.clampSelection()
		return m, nil

	case types.FatalMsg:
		m.err = msg.Err
		m.loading = false
		return m, tea.Quit

	case types.SpinnerFrameMsg:
		m.canvas = m.canvas.DrawAt(msg.Row, msg.Col, msg.Text)
		return m, nil

	case types.SpinnerClearMsg:
		m.canvas = components.NewCanvasComponent()
		return m, nil

	case types.ActionDoneMsg:
		return m.handleActionDone(msg)

	case types.HandoffDoneMsg:
		return m.handleHandoffDone(msg)
	}

	return m, nil
}

// handleResize adjusts viewport when terminal size changes
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// title rows + footer gap + footer + status line
	fixedLines := titleSpace + footerGap + 3
	m.viewportHeight = msg.Height - fixedLines
	if m.viewportHeight < 1 {
		m.viewportHeight = 1
	}
	m.ensureVisible()

	m.title = m.title.WithWidth(m.width)
	m.list = m.list.WithWidth(m.width)
	m.footer = m.footer.WithWidth(m.width)

	return m, nil
}

// handleKeyPress routes keypresses based on current state
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.actionInProgress {
			// Quit once the running command has been stopped and its spinner joined
			m.quitting = true
			if m.cancelAction != nil {
				m.cancelAction()
			}
			return m, nil
		}
		return m, tea.Quit
	}

	// Block input during actions
	if m.actionInProgress {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
			m.ensureVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.options())-1 {
			m.selectedRow++
			m.ensureVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		return m, m.commit()

	case key.Matches(msg, m.keys.Back):
		if m.state == types.StateMenu {
			return m, nil
		}
		return m, m.enter(types.ModeMenu)
	}

	return m, nil
}

// clampSelection keeps the cursor inside a list that may have shrunk
func (m *Model) clampSelection() {
	n := len(m.options())
	if m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls so the selected row is inside the viewport
func (m *Model) ensureVisible() {
	if m.selectedRow < m.scrollOffset {
		m.scrollOffset = m.selectedRow
	}
	if m.selectedRow >= m.scrollOffset+m.viewportHeight {
		m.scrollOffset = m.selectedRow - m.viewportHeight + 1
	}
}
