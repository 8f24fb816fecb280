package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "widget.json", `{
		"app": {"log_level": "debug", "notice_ttl": "4s", "time_zone": "UTC"},
		"storage": {"db": {"dsn": "w.db"}, "exports": {"dir": "out"}},
		"timer": {"total": "25m", "silent": true},
		"recorder": {"sample_rate": 22050, "bins": 128, "frame_rate": 50, "canvas_width": 40, "canvas_height": 6},
		"preview": {"address": "localhost:8088", "request_timeout": 3000000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 4*time.Second, cfg.App.NoticeTTL)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, "w.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "out", cfg.Storage.Exports.Dir)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Total)
	assert.True(t, cfg.Timer.Silent)
	assert.Equal(t, 22050, cfg.Recorder.SampleRate)
	assert.Equal(t, 128, cfg.Recorder.Bins)
	assert.Equal(t, 50, cfg.Recorder.FrameRate)
	assert.Equal(t, 40, cfg.Recorder.CanvasWidth)
	assert.Equal(t, 6, cfg.Recorder.CanvasHeight)
	assert.Equal(t, "localhost:8088", cfg.Preview.Address)
	assert.Equal(t, 3*time.Second, cfg.Preview.RequestTimeout)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "widget.yml", `
app:
  notice_ttl: 2s
timer:
  total: 90s
preview:
  request_timeout: 1500000000
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.App.NoticeTTL)
	assert.Equal(t, 90*time.Second, cfg.Timer.Total)
	assert.Equal(t, 1500*time.Millisecond, cfg.Preview.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.json") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeTempConfig(t, "bad.json", `{"timer":`) },
		},
		{
			name: "bad json duration",
			path: func(t *testing.T) string { return writeTempConfig(t, "bad.json", `{"timer":{"total":"soon"}}`) },
		},
		{
			name: "bad yaml duration",
			path: func(t *testing.T) string { return writeTempConfig(t, "bad.yaml", "timer:\n  total: soon\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
