// Package runner invokes external commands for docker-tui, either capturing their output,
// wrapped in a spinner, or attached to the controlling terminal.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Result is the outcome of a finished command
type Result struct {
	ExitCode    int
	Stderr      string
	Interrupted bool
}

// OK reports whether the command exited with status zero
func (r Result) OK() bool {
	return r.ExitCode == 0 && !r.Interrupted
}

// Reason returns a one-line description of a failed result
func (r Result) Reason() string {
	if r.Interrupted {
		return "interrupted"
	}
	if msg := strings.TrimSpace(r.Stderr); msg != "" {
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		return msg
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}

// Runner spawns engine commands
type Runner struct{}

// New creates a Runner
func New() *Runner {
	return &Runner{}
}

// Output runs argv and returns its standard output. The error is non-nil only when the
// program could not be started; a non-zero exit is reported through Result.
func (r *Runner) Output(ctx context.Context, argv []string) ([]byte, Result, error) {
	if len(argv) == 0 {
		return nil, Result{}, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, res, fmt.Errorf("failed to run %s: %w", argv[0], err)
		}
		res.ExitCode = ExitCode(err)
		res.Interrupted = Interrupted(err) || ctx.Err() != nil
	}

	return stdout.Bytes(), res, nil
}

// Run runs argv, discarding standard output and capturing standard error
func (r *Runner) Run(ctx context.Context, argv []string) (Result, error) {
	_, res, err := r.Output(ctx, argv)
	return res, err
}

// Interactive builds a command attached to the controlling terminal. The caller is expected
// to release the terminal before starting it (tea.ExecProcess does).
func Interactive(argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// ExitCode extracts the exit status from a Wait/Run error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
	}
	return 1
}

// Interrupted reports whether a command died from SIGINT, directly or as status 130
func Interrupted(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() && ws.Signal() == syscall.SIGINT {
		return true
	}
	return exitErr.ExitCode() == 130
}
