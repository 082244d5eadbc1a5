package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/go-units"

	"docker-tui/internal/components"
	"docker-tui/internal/docker"
	"docker-tui/internal/logger"
	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

// enter switches to the screen serving mode with an empty list and a fresh query
func (m *Model) enter(mode types.Mode) tea.Cmd {
	m.mode = mode
	m.state = types.StateFor(mode)
	m.containers = nil
	m.members = nil
	m.groups = nil
	m.selectedRow = 0
	m.scrollOffset = 0
	m.statusMessage = ""
	m.pending = nil
	m.title = m.title.SetTitle(titleFor(mode))

	logger.Debug("Entering screen", "mode", mode)
	return m.refresh()
}

// refresh re-queries the engine for the current screen, keeping the cursor
func (m *Model) refresh() tea.Cmd {
	m.seq++

	switch m.state {
	case types.StateContainerAction:
		m.loading = true
		return m.fetchContainersCmd(m.seq)
	case types.StateNetworkAction:
		m.loading = true
		return m.fetchNetworksCmd(m.seq)
	default:
		m.loading = false
		return nil
	}
}

// commit runs the action mapped to the selected row
func (m *Model) commit() tea.Cmd {
	switch m.state {
	case types.StateMenu:
		return m.enter(types.MenuOptions[m.selectedRow].Key)

	case types.StateContainerAction:
		if len(m.containers) == 0 {
			if m.loading {
				return nil
			}
			return m.enter(types.ModeMenu)
		}
		container := m.containers[m.selectedRow]

		switch m.mode {
		case types.ModeShell:
			m.pending = m.engine.ShellCommands(container.ID)
			return m.handoffNext()
		case types.ModeLog:
			m.pending = [][]string{m.engine.LogsCommand(container.ID)}
			return m.handoffNext()
		case types.ModeRestart:
			return m.spinActions([]string{container.ID})
		}

	case types.StateNetworkAction:
		if len(m.groups) == 0 {
			if m.loading {
				return nil
			}
			return m.enter(types.ModeMenu)
		}
		group := m.groups[m.selectedRow]

		var ids []string
		for _, member := range docker.MembersOf(m.members, group.Signature) {
			ids = append(ids, member.ID)
		}
		return m.spinActions(ids)
	}

	return nil
}

// handoffNext gives the terminal to the next pending interactive command
func (m *Model) handoffNext() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	argv := m.pending[0]
	m.pending = m.pending[1:]
	m.actionInProgress = true

	logger.Info("Handing terminal over", "command", strings.Join(argv, " "))
	return tea.ExecProcess(runner.Interactive(argv), func(err error) tea.Msg {
		return types.HandoffDoneMsg{
			ExitCode:    runner.ExitCode(err),
			Interrupted: runner.Interrupted(err),
			Err:         err,
		}
	})
}

// handleHandoffDone ends the program on success, otherwise tries the next candidate or
// goes back to the list
func (m *Model) handleHandoffDone(msg types.HandoffDoneMsg) (tea.Model, tea.Cmd) {
	m.actionInProgress = false

	if msg.Interrupted {
		logger.Info("Interactive command interrupted")
		return m, tea.Quit
	}
	if msg.ExitCode == 0 {
		m.done = true
		return m, tea.Quit
	}

	logger.Warn("Interactive command failed", "exit", msg.ExitCode, "error", msg.Err)
	if len(m.pending) > 0 {
		return m, m.handoffNext()
	}

	if msg.Err != nil && msg.ExitCode == 1 {
		m.statusMessage = fmt.Sprintf("ERROR: %v", msg.Err)
	} else {
		m.statusMessage = fmt.Sprintf("ERROR: command exited with status %d", msg.ExitCode)
	}
	return m, m.refresh()
}

// spinActions applies the current mode to every id in turn, one spinner per command
func (m *Model) spinActions(ids []string) tea.Cmd {
	m.actionInProgress = true
	m.statusMessage = ""

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelAction = cancel

	action, engine, spinner, surface := m.mode, m.engine, m.spinner, m.surface
	return func() tea.Msg {
		m.actionMu.Lock()
		defer m.actionMu.Unlock()
		defer cancel()

		var failures []string
		for _, id := range ids {
			if ctx.Err() != nil {
				break
			}

			started := time.Now()
			res, err := spinner.Run(ctx, surface, func(ctx context.Context) (runner.Result, error) {
				return engine.Apply(ctx, action, id)
			})

			switch {
			case err != nil:
				failures = append(failures, fmt.Sprintf("%s %s: %v", action, id, err))
			case !res.OK():
				failures = append(failures, fmt.Sprintf("%s %s: %s", action, id, res.Reason()))
			default:
				logger.Info("Action finished", "action", action, "id", id,
					"took", units.HumanDuration(time.Since(started)))
			}
		}

		return types.ActionDoneMsg{Failures: failures, Canceled: ctx.Err() != nil}
	}
}

// handleActionDone ends the program when every command succeeded, otherwise stays on the
// screen with a fresh query
func (m *Model) handleActionDone(msg types.ActionDoneMsg) (tea.Model, tea.Cmd) {
	m.actionInProgress = false
	m.cancelAction = nil
	m.canvas = components.NewCanvasComponent()

	if m.quitting || msg.Canceled {
		return m, tea.Quit
	}
	if len(msg.Failures) == 0 {
		m.done = true
		return m, tea.Quit
	}

	for _, failure := range msg.Failures {
		logger.Error("Action failed", "detail", failure)
	}
	m.statusMessage = "ERROR: " + strings.Join(msg.Failures, "; ")
	return m, m.refresh()
}
