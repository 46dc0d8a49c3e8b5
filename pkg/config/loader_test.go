package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crewcast.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Stages.DryRun)
}

func TestInitialize_OverridesMergeOntoDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
queue:
  worker_count: 2
  poll_interval: 250ms
stages:
  dry_run: true
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	// Unset values keep defaults.
	assert.Equal(t, 10*time.Minute, cfg.Queue.StageTimeout)
	assert.True(t, cfg.Stages.DryRun)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("CREWCAST_TEST_PORT", "7001")
	path := writeConfig(t, "server:\n  port: {{.CREWCAST_TEST_PORT}}\n")

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestInitialize_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 99999\n")
	_, err := Initialize(path)
	require.Error(t, err)

	path = writeConfig(t, `
queue:
  stage_timeout: 20m
  stuck_threshold: 5m
`)
	_, err = Initialize(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stuck_threshold")
}

func TestInitialize_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Initialize(path)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	t.Setenv("CREWCAST_TEST_SECRET", "s3cret")
	out := ExpandEnv([]byte("password: p@ss$word\ntoken: {{.CREWCAST_TEST_SECRET}}\n"))
	assert.Contains(t, string(out), "p@ss$word")
	assert.Contains(t, string(out), "s3cret")
}
