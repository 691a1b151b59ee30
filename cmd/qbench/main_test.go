package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQbench_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "qbench.yaml")
	logPath := filepath.Join(dir, "qbench.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
logger:
  file_log_name: `+logPath+`
queue:
  capacity: 8
bench:
  threads: [2, 4]
  operations: 200
  repeat: 2
`), 0o600))

	out, err := execute(t, "--config", cfgPath, "--impl", "shared")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Using 2 Threads,"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Using 4 Threads,"), lines[1])

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"impl":"shared"`)
}

func TestQbench_InvalidFlags(t *testing.T) {
	_, err := execute(t, "--capacity", "-1")
	assert.ErrorContains(t, err, "invalid config")

	_, err = execute(t, "--impl", "lockfree")
	assert.ErrorContains(t, err, "invalid config")
}
