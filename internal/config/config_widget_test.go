package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TimeZone = "UTC"
	return cfg
}

func TestNewWidgetConfig_Defaults(t *testing.T) {
	cfg, err := NewWidgetConfig(validStructuredConfig())
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Timer.TotalSeconds)
	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultExportsDir, cfg.Storage.ExportsDir)
	assert.Equal(t, time.UTC, cfg.App.Location)
	assert.Equal(t, time.Second/30, cfg.Recorder.FrameInterval())
	assert.False(t, cfg.Preview.Enabled())
}

func TestNewWidgetConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = " " }, ErrInvalidStorageConfigs},
		{"empty exports dir", func(c *StructuredConfig) { c.Storage.Exports.Dir = "" }, ErrInvalidStorageConfigs},
		{"unknown zone", func(c *StructuredConfig) { c.App.TimeZone = "Mars/Olympus" }, ErrInvalidAppConfigs},
		{"zero notice ttl", func(c *StructuredConfig) { c.App.NoticeTTL = 0 }, ErrInvalidAppConfigs},
		{"sub-second timer", func(c *StructuredConfig) { c.Timer.Total = 500 * time.Millisecond }, ErrInvalidTimerConfigs},
		{"bins not power of two", func(c *StructuredConfig) { c.Recorder.Bins = 48 }, ErrInvalidRecorderConfigs},
		{"frame rate too high", func(c *StructuredConfig) { c.Recorder.FrameRate = 240 }, ErrInvalidRecorderConfigs},
		{"zero canvas", func(c *StructuredConfig) { c.Recorder.CanvasHeight = 0 }, ErrInvalidRecorderConfigs},
		{"preview without timeout", func(c *StructuredConfig) {
			c.Preview.Address = "localhost:8088"
			c.Preview.RequestTimeout = 0
		}, ErrInvalidPreviewConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			_, err := NewWidgetConfig(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
