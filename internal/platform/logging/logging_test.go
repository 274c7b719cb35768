package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "dates", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, 3.0, entry["dates"])
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("view started", "metric", "New Cases")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `metric="New Cases"`)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.True(t, errors.Is(err, ErrUnknownLevel))

	_, err = New(Config{Format: "xml"})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
