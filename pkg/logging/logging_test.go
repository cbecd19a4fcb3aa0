package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	require.NoError(t, Setup(false, "sourcecombiner", "1.0.0"))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(true, "sourcecombiner", "1.0.0"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
