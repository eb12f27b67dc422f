package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
		"fatal":   zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNew_Console(t *testing.T) {
	var out bytes.Buffer
	log := New("info", &out, "")

	log.Debug("hidden")
	log.Info("saved vtk file", zap.Int("points", 3))

	assert.Equal(t, "INFO saved vtk file {\"points\": 3}\n", out.String())
}

func TestNew_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "vtkconv.log")

	log := New("warn", nil, logFile)
	log.Info("dropped below level")
	log.Warn("skipping attribute", zap.String("field", "intensity"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "skipping attribute", entry["msg"])
	assert.Equal(t, "intensity", entry["field"])
	assert.Contains(t, entry, "caller")
	assert.Contains(t, entry, "time")
}

func TestNew_NoOutputs(t *testing.T) {
	log := New("debug", nil, "")
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInit(t *testing.T) {
	Init("debug", "")
	t.Cleanup(func() { Log = zap.NewNop() })

	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
	Sync()
}
