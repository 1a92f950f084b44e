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
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.WithFields(map[string]interface{}{"jobKey": int64(42)}).
		WithError(errors.New("boom")).
		Warn("job failed", map[string]interface{}{"taskType": "score-hook"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "job failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(42), ctx["jobKey"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "score-hook", ctx["taskType"])
}

func TestNewStructured_Levels(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log := NewStructured("error", format)
		require.NotNil(t, log)
		log.Info("dropped", nil)
	}
	NewNoOpLogger().With(map[string]interface{}{"a": 1}).Error("ignored", nil)
	NewTestLogger(t).Debug("visible on failure", map[string]interface{}{"k": "v"})
}
