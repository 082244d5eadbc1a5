// Package types contains all data structures and constants used throughout docker-tui.
package types

import "fmt"

// Mode is the action the operator wants to run on a container
type Mode string

const (
	ModeMenu    Mode = "menu"
	ModeShell   Mode = "shell"
	ModeLog     Mode = "log"
	ModeRestart Mode = "restart"
	ModeStart   Mode = "start"
	ModeStop    Mode = "stop"
)

// Modes lists every accepted mode in CLI order
var Modes = []Mode{ModeMenu, ModeShell, ModeLog, ModeRestart, ModeStart, ModeStop}

// ParseMode validates a mode argument
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q", s)
}

// IsNetwork reports whether the mode operates on network groups instead of single containers
func (m Mode) IsNetwork() bool {
	return m == ModeStart || m == ModeStop
}

// Interactive reports whether the mode hands the terminal to the spawned command
func (m Mode) Interactive() bool {
	return m == ModeShell || m == ModeLog
}

// MenuOption is a row of the root menu
type MenuOption struct {
	Index int
	Key   Mode
	Label string
}

// MenuOptions is the static root menu
var MenuOptions = []MenuOption{
	{Index: 0, Key: ModeShell, Label: "Shell"},
	{Index: 1, Key: ModeLog, Label: "Log"},
	{Index: 2, Key: ModeStart, Label: "Start"},
	{Index: 3, Key: ModeStop, Label: "Stop"},
	{Index: 4, Key: ModeRestart, Label: "Restart"},
}

// Container is a running container as listed by the engine
type Container struct {
	Ordinal int
	ID      string
	Name    string
}

// NetworkMember is a container paired with its network signature
type NetworkMember struct {
	Ordinal   int
	Signature string // comma-joined network names, may be empty
	ID        string
}

// State represents the screen the controller is on
type State int

const (
	StateMenu State = iota
	StateContainerAction
	StateNetworkAction
)

// StateFor returns the screen that serves a mode
func StateFor(m Mode) State {
	switch {
	case m == ModeMenu:
		return StateMenu
	case m.IsNetwork():
		return StateNetworkAction
	default:
		return StateContainerAction
	}
}

// Message types for Bubble Tea

// ContainerListMsg carries a fresh container listing for screen generation Seq
type ContainerListMsg struct {
	Seq        int
	Containers []Container
}

// NetworkListMsg carries every inspected container and the per-item failures
type NetworkListMsg struct {
	Seq         int
	Members     []NetworkMember
	Diagnostics []string
}

// FatalMsg ends the program with an error
type FatalMsg struct {
	Err error
}

// ActionDoneMsg reports the end of spinner-wrapped commands
type ActionDoneMsg struct {
	Failures []string
	Canceled bool
}

// HandoffDoneMsg reports the end of an interactive command
type HandoffDoneMsg struct {
	ExitCode    int
	Interrupted bool
	Err         error
}

// SpinnerFrameMsg paints text at a fixed cell
type SpinnerFrameMsg struct {
	Row  int
	Col  int
	Text string
}

// SpinnerClearMsg wipes the spinner cell
type SpinnerClearMsg struct{}
