package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("debug message", nil)
	logger.Info("HTTP request", map[string]interface{}{"method": "GET", "attempt": 2})
	logger.Warn("warn message", map[string]interface{}{})
	logger.Error("error message", map[string]interface{}{"status": 500})

	require.Equal(t, 4, logs.Len())

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["attempt"])

	errorEntries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorEntries, 1)
	assert.EqualValues(t, 500, errorEntries[0].ContextMap()["status"])
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	quiet, err := NewLogger(false)
	require.NoError(t, err)
	assert.NotPanics(t, func() { quiet.Info("discarded", nil) })

	assert.NotPanics(t, func() { NewZapLogger(nil).Error("discarded", nil) })
}
