package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	require := require.New(t)
	t.Setenv("ENV", "")

	t.Run("JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewSlogWithWriter(&buf, InfoLevel, false)
		l.Info("timer armed", "id", "TP3")

		var rec map[string]any
		require.NoError(json.Unmarshal(buf.Bytes(), &rec))
		require.Equal("timer armed", rec["msg"])
		require.Equal("TP3", rec["id"])
		require.Contains(rec, "ts")
	})

	t.Run("Level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewSlogWithWriter(&buf, WarnLevel, false)
		require.Equal(WarnLevel, l.Level())

		l.Debug("dropped")
		l.Info("dropped")
		require.Zero(buf.Len())

		l.SetLevel(DebugLevel)
		require.Equal(DebugLevel, l.Level())
		l.Debug("kept")
		require.Contains(buf.String(), "kept")
	})

	t.Run("With shares level", func(t *testing.T) {
		var buf bytes.Buffer
		parent := NewSlogWithWriter(&buf, ErrorLevel, false)
		child := parent.With("port", 1)

		child.Warn("dropped")
		require.Zero(buf.Len())

		parent.SetLevel(WarnLevel)
		child.Warn("alarm")
		require.Contains(buf.String(), `"port":1`)
		require.Contains(buf.String(), "alarm")
	})
}

func TestMockLogger(t *testing.T) {
	m := NewMockLogger()
	m.On("Warn", "alarm", []any{"id", "TA1"}).Return()

	var l Logger = m
	l.Warn("alarm", "id", "TA1")

	m.AssertExpectations(t)
}
