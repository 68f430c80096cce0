package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/quickcount/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("stats computed", slog.Int("words", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "stats computed", entry["msg"])
	assert.EqualValues(t, 3, entry["words"])
}

func TestNewLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestNewLogger_DebugEnabled(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "debug"}, &bytes.Buffer{})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickcount.log")

	logger, closer, err := OpenFile(config.LogConfig{Level: "info", Format: "text"}, path)
	require.NoError(t, err)
	logger.Info("document loaded", slog.String("path", "notes.txt"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "document loaded"))
}

func TestOpenFile_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenFile(config.LogConfig{Level: "debug"}, "")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
