package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidModeDoesNotStartInterface(t *testing.T) {
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"explode"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), invalidModeText)
}

func TestTooManyArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"shell", "log"})

	assert.Error(t, cmd.Execute())
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  binary: podman\n"), 0o644))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", path, "--log-level", "debug", "config"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "binary: podman")
	assert.Contains(t, stdout.String(), "level: debug")
	assert.Contains(t, stdout.String(), "- bash")
}
