// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var widgetEnvKeys = []string{
	"CONFIG",
	"APP_LOG_FILE", "APP_LOG_LEVEL", "APP_NOTICE_TTL", "APP_TIME_ZONE",
	"STORAGE_DB_DSN", "STORAGE_EXPORTS_DIR",
	"TIMER_TOTAL", "TIMER_SILENT",
	"RECORDER_SAMPLE_RATE", "RECORDER_BINS", "RECORDER_FRAME_RATE",
	"RECORDER_CANVAS_WIDTH", "RECORDER_CANVAS_HEIGHT",
	"PREVIEW_ADDRESS", "PREVIEW_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                  "/etc/widget.yaml",
		"APP_LOG_FILE":            "/tmp/widget.log",
		"APP_LOG_LEVEL":           "warn",
		"APP_NOTICE_TTL":          "5s",
		"APP_TIME_ZONE":           "UTC",
		"STORAGE_DB_DSN":          "/tmp/widget.db",
		"STORAGE_EXPORTS_DIR":     "/tmp/exports",
		"TIMER_TOTAL":             "25m",
		"TIMER_SILENT":            "true",
		"RECORDER_SAMPLE_RATE":    "48000",
		"RECORDER_BINS":           "32",
		"RECORDER_FRAME_RATE":     "60",
		"RECORDER_CANVAS_WIDTH":   "80",
		"RECORDER_CANVAS_HEIGHT":  "10",
		"PREVIEW_ADDRESS":         "localhost:8088",
		"PREVIEW_REQUEST_TIMEOUT": "2s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/widget.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "/tmp/widget.log", cfg.App.LogFile)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.App.NoticeTTL)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, "/tmp/widget.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/exports", cfg.Storage.Exports.Dir)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Total)
	assert.True(t, cfg.Timer.Silent)
	assert.Equal(t, 48000, cfg.Recorder.SampleRate)
	assert.Equal(t, 32, cfg.Recorder.Bins)
	assert.Equal(t, 60, cfg.Recorder.FrameRate)
	assert.Equal(t, 80, cfg.Recorder.CanvasWidth)
	assert.Equal(t, 10, cfg.Recorder.CanvasHeight)
	assert.Equal(t, "localhost:8088", cfg.Preview.Address)
	assert.Equal(t, 2*time.Second, cfg.Preview.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"TIMER_TOTAL": "five minutes"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"RECORDER_BINS": "many"})

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range widgetEnvKeys {
		t.Setenv(k, "")
	}
}
