package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

func TestNewLogger_RespectsLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json", Output: "stderr"})

	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradewinds.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Info("market regenerated", zap.String("location", "earth_station"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earth_station")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "loud", Format: "json", Output: "stderr"})

	assert.Error(t, err)
}

func TestNewLogger_FileOutputNeedsPath(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "info", Format: "console", Output: "file"})

	assert.Error(t, err)
}
