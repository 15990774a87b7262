package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"INFO":    Info,
		"warning": Warn,
		" error ": Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}

func TestZapLogger_WithMergesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"pet_id": "pet-1", "": "ignored"})

	l.Warn("reminder bulk insert failed", map[string]any{
		"draft_count": 3,
		"error":       errors.New("boom"),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "reminder bulk insert failed", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "pet-1", ctx["pet_id"])
	assert.EqualValues(t, 3, ctx["draft_count"])
	assert.Equal(t, "boom", ctx["error"])
	assert.NotContains(t, ctx, "")
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.With(nil).Info("hello", nil)
	l.Error("bye", map[string]any{"k": 1})
}
