// Package ui contains the TUI model, update logic, and view rendering for docker-tui.
package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"docker-tui/internal/components"
	"docker-tui/internal/docker"
	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

const (
	padding    = 1 // left margin of list rows and footer
	titleSpace = 3 // first list row
	footerGap  = 2 // rows between the last option and the footer
)

// FooterText describes the control keys
const FooterText = "Quit: <ctrl+c> | Move: <arrow-up>, <arrow-down> | Choose: <enter>"

// Model represents the application state
type Model struct {
	ctx     context.Context
	engine  docker.Engine
	spinner *runner.Spinner
	surface runner.Surface

	// Controller state
	state types.State
	mode  types.Mode
	seq   int // bumped on every query so late results of an old screen are dropped

	// Data
	containers []types.Container
	members    []types.NetworkMember
	groups     []types.NetworkMember

	// Navigation state
	selectedRow    int
	scrollOffset   int
	viewportHeight int

	// Display state
	width  int
	height int

	// UI state
	loading          bool
	actionInProgress bool
	quitting         bool
	done             bool
	statusMessage    string
	err              error

	// Running action
	pending      [][]string // interactive candidates not tried yet
	cancelAction context.CancelFunc
	actionMu     sync.Mutex // held while a spinner action runs
	canvas       components.CanvasComponent

	// Components
	title  components.TitleComponent
	list   components.OptionListComponent
	footer components.FooterComponent
	keys   keyMap
}

// NewModel creates a model that opens on the screen serving mode
func NewModel(ctx context.Context, engine docker.Engine, spinner *runner.Spinner, mode types.Mode) *Model {
	if spinner == nil {
		spinner = runner.NewSpinner(0)
	}

	return &Model{
		ctx:            ctx,
		engine:         engine,
		spinner:        spinner,
		surface:        nopSurface{},
		state:          types.StateFor(mode),
		mode:           mode,
		viewportHeight: 10,
		width:          80,
		height:         24,

		title:  components.NewTitleComponent(titleFor(mode)),
		list:   components.NewOptionListComponent(padding),
		footer: components.NewFooterComponent(FooterText, padding),
		canvas: components.NewCanvasComponent(),
		keys:   defaultKeyMap(),
	}
}

// SetSurface routes spinner frames to surface
func (m *Model) SetSurface(surface runner.Surface) {
	m.surface = surface
}

// Init loads the first screen
func (m *Model) Init() tea.Cmd {
	return m.enter(m.mode)
}

// Err returns the fatal error that ended the program, if any
func (m *Model) Err() error {
	return m.err
}

// Done reports whether the program ended because an action succeeded
func (m *Model) Done() bool {
	return m.done
}

// Wait blocks until no spinner action is running
func (m *Model) Wait() {
	m.actionMu.Lock()
	defer m.actionMu.Unlock()
}

// options returns the labels of the current screen
func (m *Model) options() []string {
	switch m.state {
	case types.StateMenu:
		labels := make([]string, 0, len(types.MenuOptions))
		for _, option := range types.MenuOptions {
			labels = append(labels, option.Label)
		}
		return labels
	case types.StateContainerAction:
		labels := make([]string, 0, len(m.containers))
		for _, c := range m.containers {
			labels = append(labels, c.Name)
		}
		return labels
	case types.StateNetworkAction:
		labels := make([]string, 0, len(m.groups))
		for _, g := range m.groups {
			labels = append(labels, g.Signature)
		}
		return labels
	}
	return nil
}

// titleFor returns the banner shown above a screen's list
func titleFor(mode types.Mode) string {
	switch mode {
	case types.ModeMenu:
		return "==================== Choose an Option ====================="
	case types.ModeShell:
		return "==================== Choose a Docker Container to Shell into ====================="
	case types.ModeLog:
		return "==================== Choose a Docker Container to see logs ====================="
	case types.ModeRestart:
		return "===================== Choose a Docker Container to restart ======================"
	case types.ModeStart, types.ModeStop:
		return "==================== Choose a Docker Network to " + string(mode) + " ====================="
	default:
		return "==================== Choose a Docker Container ====================="
	}
}
