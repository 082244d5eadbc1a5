package docker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"

	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

// APIEngine talks to the Docker API for listing, inspection and lifecycle actions. Shells
// and log follows still go through the engine binary since they need a terminal.
type APIEngine struct {
	*Client
	commands
}

// Running lists running containers
func (e *APIEngine) Running(ctx context.Context) ([]types.Container, error) {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutQuick)
	defer cancel()

	result, err := e.cli.ContainerList(ctx, client.ContainerListOptions{All: false})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("operation timed out after %s", TimeoutQuick)
		}
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	containers := make([]types.Container, 0, len(result.Items))
	for i, summary := range result.Items {
		containers = append(containers, parseContainer(i+1, summary))
	}

	return containers, nil
}

// AllIDs lists the ids of all containers, stopped ones included
func (e *APIEngine) AllIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutQuick)
	defer cancel()

	result, err := e.cli.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("operation timed out after %s", TimeoutQuick)
		}
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	ids := make([]string, 0, len(result.Items))
	for _, summary := range result.Items {
		ids = append(ids, shortID(summary.ID))
	}
	return ids, nil
}

// NetworkSignature inspects a container and joins its network names
func (e *APIEngine) NetworkSignature(ctx context.Context, id string) (string, error) {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutQuick)
	defer cancel()

	inspectResult, err := e.cli.ContainerInspect(ctx, id, client.ContainerInspectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to inspect container %s: %w", id, err)
	}

	return networkSignature(inspectResult.Container), nil
}

// Apply starts, stops or restarts a container. API errors are reported as a failed Result
// so both backends look the same to the controller.
func (e *APIEngine) Apply(ctx context.Context, action types.Mode, id string) (runner.Result, error) {
	var err error
	switch action {
	case types.ModeStart:
		err = e.startContainer(ctx, id)
	case types.ModeStop:
		err = e.stopContainer(ctx, id)
	case types.ModeRestart:
		err = e.restartContainer(ctx, id)
	default:
		return runner.Result{}, fmt.Errorf("unsupported action %q", action)
	}

	if err != nil {
		return runner.Result{ExitCode: 1, Stderr: err.Error(), Interrupted: errors.Is(err, context.Canceled)}, nil
	}
	return runner.Result{}, nil
}

func (e *APIEngine) startContainer(ctx context.Context, id string) error {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutMedium)
	defer cancel()

	_, err := e.cli.ContainerStart(ctx, id, client.ContainerStartOptions{})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("start operation timed out after %s", TimeoutMedium)
		}
		return fmt.Errorf("failed to start container: %w", err)
	}
	return nil
}

func (e *APIEngine) stopContainer(ctx context.Context, id string) error {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutMedium+e.stopTimeout)
	defer cancel()

	timeout := int(e.stopTimeout.Seconds())
	_, err := e.cli.ContainerStop(ctx, id, client.ContainerStopOptions{Timeout: &timeout})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("stop operation timed out after %s", TimeoutMedium+e.stopTimeout)
		}
		return fmt.Errorf("failed to stop container: %w", err)
	}
	return nil
}

func (e *APIEngine) restartContainer(ctx context.Context, id string) error {
	ctx, cancel := e.WithCustomTimeout(ctx, TimeoutLong)
	defer cancel()

	timeout := int(e.stopTimeout.Seconds())
	_, err := e.cli.ContainerRestart(ctx, id, client.ContainerRestartOptions{Timeout: &timeout})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("restart operation timed out after %s", TimeoutLong)
		}
		return fmt.Errorf("failed to restart container: %w", err)
	}
	return nil
}

// Helper functions

// parseContainer converts an API summary to a list row. The name field mirrors the second
// column of "docker ps", which is the image.
func parseContainer(ordinal int, summary container.Summary) types.Container {
	name := summary.Image
	if name == "" && len(summary.Names) > 0 {
		name = strings.TrimPrefix(summary.Names[0], "/")
	}

	return types.Container{
		Ordinal: ordinal,
		ID:      shortID(summary.ID),
		Name:    name,
	}
}

// networkSignature joins the attached network names. Go maps have no order, so names are
// sorted, which matches how the engine serialises them.
func networkSignature(inspect container.InspectResponse) string {
	if inspect.NetworkSettings == nil {
		return ""
	}

	names := make([]string, 0, len(inspect.NetworkSettings.Networks))
	for name := range inspect.NetworkSettings.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
