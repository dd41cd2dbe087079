// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, LevelDebug, FormatJSON)
	require.NoError(t, err)

	log.Debug("model built", "nodes", 4)
	log.Info("solve finished", "status", "optimal")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "DEBUG", rec["level"])
	require.Equal(t, "model built", rec["msg"])
	require.Equal(t, float64(4), rec["nodes"])
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, LevelWarn, "")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "round", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "round=1")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, LevelInfo, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() { Discard().Error("dropped") })
}
