package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), "level %q", in)
	}
}

func TestLoggerNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Level: "info", Format: "json"}.NewHandler(&buf))

	logger.Debug("hidden")
	logger.Info("shown", slog.Int("n", 1))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.EqualValues(t, 1, line["n"])
}

func TestLoggerNewHandlerTextFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Format: "xml"}.NewHandler(&buf))
	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
