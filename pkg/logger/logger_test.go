package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huynhanx03/twolockq/pkg/settings"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")
	log, err := New(settings.Logger{LogLevel: "debug", FileLogName: path, MaxSize: 1})
	require.NoError(t, err)

	log.Debug("created bounded queue", zap.Int("capacity", 4))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "created bounded queue", entry["msg"])
	assert.Equal(t, float64(4), entry["capacity"])
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"default_is_info", "", false, true},
		{"debug", "debug", true, true},
		{"warn", "warn", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(settings.Logger{LogLevel: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, log.Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "verbose"})
	assert.ErrorContains(t, err, "invalid log level")
}
