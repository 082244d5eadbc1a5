package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "docker", cfg.Engine.Binary)
	assert.Equal(t, "cli", cfg.Engine.Backend)
	assert.Equal(t, 10*time.Second, cfg.StopTimeout())
	assert.Equal(t, []string{"bash", "sh"}, cfg.Shell.Candidates)
	assert.Equal(t, 100*time.Millisecond, cfg.Spinner.Interval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.File)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
engine:
  binary: podman
  backend: cli
shell:
  candidates: [zsh, ash]
spinner:
  interval: 250ms
log:
  level: debug
  file: "-"
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "podman", cfg.Engine.Binary)
	assert.Equal(t, []string{"zsh", "ash"}, cfg.Shell.Candidates)
	assert.Equal(t, 250*time.Millisecond, cfg.Spinner.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "-", cfg.Log.File)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "engine:\n  binary: docker\n")
	t.Setenv("DOCKER_TUI_ENGINE_BINARY", "nerdctl")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "nerdctl", cfg.Engine.Binary)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "engine:\n  backend: grpc\n"},
		{"empty binary", "engine:\n  binary: \"\"\n"},
		{"zero interval", "spinner:\n  interval: 0s\n"},
		{"broken yaml", "engine: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(viper.New(), writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := &Config{
		Engine: EngineConfig{Binary: "docker", Backend: "api", StopTimeout: 5},
		Shell:  ShellConfig{Candidates: []string{"bash"}},
		Log:    LogConfig{Level: "warn", File: "-"},
	}

	out, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, out, "backend: api")

	var decoded Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, cfg.Engine, decoded.Engine)
	assert.Equal(t, cfg.Shell, decoded.Shell)
}
