package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), input)
	}
}

func TestNewWritesJSONOutsideDev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "prod")

	log.Debug("hidden")
	log.Info("api request completed", slog.Int("status", 200))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "api request completed", entry["msg"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestNewWritesPlainTextInDev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, EnvironmentDev)

	log.Info("hidden")
	log.Warn("ignoring malformed session entry", slog.String("key", "user"))

	out := buf.String()
	assert.Contains(t, out, "ignoring malformed session entry")
	assert.Contains(t, out, "key=user")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\x1b[")
}
