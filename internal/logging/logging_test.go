package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/anuj140/hireengine/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "json", "warn")

	logger.Info("dropped")
	logger.Warn("kept", "recruiter_id", "r1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "r1", entry["recruiter_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "text", "debug")

	logger.Error("reconcile failed", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "reconcile failed")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "\x1b[")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("nonsense"))
}
