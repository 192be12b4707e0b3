package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	defer Set(zap.NewNop())

	require.NoError(t, Init("debug", "json"))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", "console"))
	assert.False(t, L().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, Init("loud", "json"))
}

func TestHelpersWriteToGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	Debug("hidden")
	Info("hello", zap.String("user", "leo"))
	Warn("careful")
	With(zap.Int("n", 1)).Error("boom")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "leo", entries[0].ContextMap()["user"])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.EqualValues(t, 1, entries[2].ContextMap()["n"])
}
