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
	t.Cleanup(func() { Set(zap.NewNop()) })

	require.NoError(t, Init("debug", "json"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, Init("warn", "console"))
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.False(t, L().Core().Enabled(zapcore.InfoLevel))
}

func TestInitRejectsBadInput(t *testing.T) {
	assert.Error(t, Init("loud", "json"))
	assert.Error(t, Init("info", "xml"))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(zap.NewNop()) })

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	L().Info("recipe created", zap.Uint("id", 1))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "recipe created", logs.All()[0].Message)
}
