package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 8000, cfg.Queue.Capacity)
	assert.Equal(t, ImplTwoLock, cfg.Queue.Implementation)
	assert.Equal(t, []int{2, 4, 6, 8}, cfg.Bench.Threads)
	assert.Equal(t, 30, cfg.Bench.Repeat)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: debug
  file_log_name: /tmp/qbench.log
queue:
  capacity: 16
  implementation: shared
bench:
  threads: [2, 8]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, "/tmp/qbench.log", cfg.Logger.FileLogName)
	assert.Equal(t, 3, cfg.Logger.MaxBackups, "unset keys keep their defaults")
	assert.Equal(t, 16, cfg.Queue.Capacity)
	assert.Equal(t, ImplShared, cfg.Queue.Implementation)
	assert.Equal(t, []int{2, 8}, cfg.Bench.Threads)
	assert.Equal(t, 8000, cfg.Bench.Operations)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero_capacity", "queue:\n  capacity: 0\n"},
		{"negative_capacity", "queue:\n  capacity: -4\n"},
		{"unknown_implementation", "queue:\n  implementation: lockfree\n"},
		{"single_thread", "bench:\n  threads: [1]\n"},
		{"no_threads", "bench:\n  threads: []\n"},
		{"zero_repeat", "bench:\n  repeat: 0\n"},
		{"bad_level", "logger:\n  log_level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = Load(writeConfig(t, "queue: [not, a, map]\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}
