package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/infrastructure/config"
)

func TestBuildConfig(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.LogConfig
		level    zap.AtomicLevel
		encoding string
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, zap.NewAtomicLevelAt(zap.InfoLevel), "json"},
		{"console debug", config.LogConfig{Level: "debug", Format: "console"}, zap.NewAtomicLevelAt(zap.DebugLevel), "console"},
		{"empty level", config.LogConfig{}, zap.NewAtomicLevelAt(zap.InfoLevel), "console"},
		{"error", config.LogConfig{Level: "error", Format: "json"}, zap.NewAtomicLevelAt(zap.ErrorLevel), "json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			zapCfg, err := buildConfig(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.level.Level(), zapCfg.Level.Level())
			assert.Equal(t, tc.encoding, zapCfg.Encoding)
			assert.Equal(t, []string{"stderr"}, zapCfg.OutputPaths)
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = New(config.LogConfig{Level: "verbose"})
	assert.Error(t, err)
}
