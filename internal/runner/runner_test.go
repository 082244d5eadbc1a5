package runner

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputCapturesStdoutAndExitCode(t *testing.T) {
	r := New()

	out, res, err := r.Output(context.Background(), []string{"sh", "-c", "echo hello; echo oops >&2; exit 3"})
	require.NoError(t, err)

	assert.Equal(t, "hello\n", string(out))
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.False(t, res.OK())
	assert.Equal(t, "oops", res.Reason())
}

func TestRunSuccess(t *testing.T) {
	res, err := New().Run(context.Background(), []string{"true"})
	require.NoError(t, err)
	assert.True(t, res.OK())
}

func TestOutputMissingProgram(t *testing.T) {
	_, _, err := New().Output(context.Background(), []string{"docker-tui-no-such-binary"})
	assert.Error(t, err)
}

func TestOutputEmptyCommand(t *testing.T) {
	_, _, err := New().Output(context.Background(), nil)
	assert.Error(t, err)
}

func TestResultReason(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{"exit code only", Result{ExitCode: 2}, "exit status 2"},
		{"first stderr line", Result{ExitCode: 1, Stderr: "Error: No such container\nmore\n"}, "Error: No such container"},
		{"interrupted", Result{ExitCode: 130, Interrupted: true}, "interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Reason())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))

	err := exec.Command("sh", "-c", "exit 7").Run()
	assert.Equal(t, 7, ExitCode(err))
	assert.False(t, Interrupted(err))

	err = exec.Command("sh", "-c", "exit 130").Run()
	assert.True(t, Interrupted(err))

	err = exec.Command("sh", "-c", "kill -INT $$").Run()
	assert.True(t, Interrupted(err))
	assert.Equal(t, 130, ExitCode(err))
}

func TestInteractiveAttachesTerminal(t *testing.T) {
	cmd := Interactive([]string{"docker", "logs", "-f", "abc"})
	assert.Equal(t, []string{"docker", "logs", "-f", "abc"}, cmd.Args)
	assert.NotNil(t, cmd.Stdin)
	assert.NotNil(t, cmd.Stdout)
	assert.NotNil(t, cmd.Stderr)
}
