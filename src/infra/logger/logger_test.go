package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/src/infra/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := WithComponent(NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf), "repo")

	log.Debug("hidden")
	log.Info("comment deleted", "comment_id", "comment-123")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "comment deleted", entry["msg"])
	assert.Equal(t, "comment-123", entry["comment_id"])
	assert.Equal(t, "repo", entry["component"])
}

func TestNewWithWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "warn", Format: "plain"}, &buf)

	log.Info("skipped")
	log.Warn("only the message", "ignored", true)

	assert.Equal(t, "only the message\n", buf.String())
}
