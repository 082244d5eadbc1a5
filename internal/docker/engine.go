// Package docker provides container engine operations for docker-tui, backed either by the
// engine's command line or by the Docker API.
package docker

import (
	"context"
	"fmt"
	"time"

	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

// Engine is everything the controller needs from the container engine
type Engine interface {
	// Running lists the running containers in the engine's order
	Running(ctx context.Context) ([]types.Container, error)
	// AllIDs lists the ids of every container, stopped ones included
	AllIDs(ctx context.Context) ([]string, error)
	// NetworkSignature returns the comma-joined network names of a container
	NetworkSignature(ctx context.Context, id string) (string, error)
	// Apply runs a lifecycle action (restart, start, stop) on a container
	Apply(ctx context.Context, action types.Mode, id string) (runner.Result, error)
	// ShellCommands returns the shell candidates, in the order they are tried
	ShellCommands(id string) [][]string
	// LogsCommand returns the log follow command
	LogsCommand(id string) []string
	Close() error
}

// Options selects and tunes an engine backend
type Options struct {
	Binary      string
	Backend     string
	Shells      []string
	StopTimeout time.Duration
}

// New creates the engine backend named by opts.Backend
func New(opts Options) (Engine, error) {
	if opts.Binary == "" {
		opts.Binary = "docker"
	}
	if len(opts.Shells) == 0 {
		opts.Shells = []string{"bash", "sh"}
	}

	switch opts.Backend {
	case "", "cli":
		return NewCLI(opts.Binary, opts.Shells, runner.New()), nil
	case "api":
		client, err := NewClient()
		if err != nil {
			return nil, err
		}
		if opts.StopTimeout > 0 {
			client.SetStopTimeout(opts.StopTimeout)
		}
		return &APIEngine{Client: client, commands: commands{binary: opts.Binary, shells: opts.Shells}}, nil
	default:
		return nil, fmt.Errorf("unknown engine backend %q", opts.Backend)
	}
}

// commands builds the argument lists handed to the engine binary
type commands struct {
	binary string
	shells []string
}

func (c commands) ShellCommands(id string) [][]string {
	cmds := make([][]string, 0, len(c.shells))
	for _, shell := range c.shells {
		cmds = append(cmds, []string{c.binary, "exec", "-it", id, shell})
	}
	return cmds
}

func (c commands) LogsCommand(id string) []string {
	return []string{c.binary, "logs", "-f", id}
}

func (c commands) actionCommand(action types.Mode, id string) ([]string, error) {
	switch action {
	case types.ModeRestart, types.ModeStart, types.ModeStop:
		return []string{c.binary, string(action), id}, nil
	default:
		return nil, fmt.Errorf("unsupported action %q", action)
	}
}
