package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("empty level is a no-op logger", func(t *testing.T) {
		logger, err := NewLogger("")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("level gates output", func(t *testing.T) {
		logger, err := NewLogger("warn")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level fails", func(t *testing.T) {
		_, err := NewLogger("loud")
		assert.Error(t, err)
	})
}
