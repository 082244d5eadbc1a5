package docker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"docker-tui/internal/runner"
	"docker-tui/internal/types"
)

// Executor runs engine commands
type Executor interface {
	Output(ctx context.Context, argv []string) ([]byte, runner.Result, error)
	Run(ctx context.Context, argv []string) (runner.Result, error)
}

// CLIEngine drives the engine through its command line
type CLIEngine struct {
	commands
	exec Executor
}

// NewCLI creates an engine that shells out to binary
func NewCLI(binary string, shells []string, exec Executor) *CLIEngine {
	return &CLIEngine{
		commands: commands{binary: binary, shells: shells},
		exec:     exec,
	}
}

// Running lists running containers with "<binary> ps"
func (e *CLIEngine) Running(ctx context.Context) ([]types.Container, error) {
	out, res, err := e.exec.Output(ctx, []string{e.binary, "ps"})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	if !res.OK() {
		return nil, fmt.Errorf("failed to list containers: %s", res.Reason())
	}
	return ParsePS(out), nil
}

// AllIDs lists every container id with "<binary> ps -a -q"
func (e *CLIEngine) AllIDs(ctx context.Context) ([]string, error) {
	out, res, err := e.exec.Output(ctx, []string{e.binary, "ps", "-a", "-q"})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	if !res.OK() {
		return nil, fmt.Errorf("failed to list containers: %s", res.Reason())
	}
	return strings.Fields(string(out)), nil
}

// NetworkSignature inspects a container and joins its network names
func (e *CLIEngine) NetworkSignature(ctx context.Context, id string) (string, error) {
	out, res, err := e.exec.Output(ctx, []string{e.binary, "inspect", id})
	if err != nil {
		return "", fmt.Errorf("failed to inspect container %s: %w", id, err)
	}
	if !res.OK() {
		return "", fmt.Errorf("failed to inspect container %s: %s", id, res.Reason())
	}
	return ParseNetworkSignature(out)
}

// Apply runs "<binary> <action> <id>"
func (e *CLIEngine) Apply(ctx context.Context, action types.Mode, id string) (runner.Result, error) {
	argv, err := e.actionCommand(action, id)
	if err != nil {
		return runner.Result{}, err
	}
	return e.exec.Run(ctx, argv)
}

// Close is a no-op for the command line backend
func (e *CLIEngine) Close() error {
	return nil
}

// ParsePS parses the tabular output of "ps". The header and blank lines are skipped; the
// first column is the container id and the second the name field.
func ParsePS(out []byte) []types.Container {
	var containers []types.Container

	scanner := bufio.NewScanner(bytes.NewReader(out))
	index := 0
	for scanner.Scan() {
		line := scanner.Text()
		index++
		if index == 1 || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		containers = append(containers, types.Container{
			Ordinal: index - 1,
			ID:      fields[0],
			Name:    fields[1],
		})
	}

	return containers
}

// ParseNetworkSignature extracts the keys of NetworkSettings.Networks from "inspect" output,
// in document order, joined with ", ".
func ParseNetworkSignature(out []byte) (string, error) {
	var inspected []struct {
		NetworkSettings struct {
			Networks json.RawMessage `json:"Networks"`
		} `json:"NetworkSettings"`
	}
	if err := json.Unmarshal(out, &inspected); err != nil {
		return "", fmt.Errorf("failed to parse inspect output: %w", err)
	}
	if len(inspected) == 0 {
		return "", fmt.Errorf("inspect returned no objects")
	}

	names, err := objectKeys(inspected[0].NetworkSettings.Networks)
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}

// objectKeys returns the top-level keys of a JSON object in the order they appear
func objectKeys(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read networks: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("networks is not an object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read networks: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected network key %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("failed to read network %s: %w", key, err)
		}
	}

	return keys, nil
}
