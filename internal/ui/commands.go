package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"docker-tui/internal/docker"
	"docker-tui/internal/types"
)

// fetchContainersCmd lists running containers for screen generation seq
func (m *Model) fetchContainersCmd(seq int) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		containers, err := engine.Running(ctx)
		if err != nil {
			return types.FatalMsg{Err: err}
		}
		return types.ContainerListMsg{Seq: seq, Containers: containers}
	}
}

// fetchNetworksCmd inspects every container for screen generation seq
func (m *Model) fetchNetworksCmd(seq int) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		members, diagnostics, err := docker.FetchNetworkMembers(ctx, engine)
		if err != nil {
			return types.FatalMsg{Err: err}
		}
		return types.NetworkListMsg{Seq: seq, Members: members, Diagnostics: diagnostics}
	}
}
