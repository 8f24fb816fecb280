// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that cannot be
// repaired by defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Timer.Total < 0 {
		return ErrInvalidTimerConfigs
	}
	if cfg.Recorder.SampleRate < 0 || cfg.Recorder.Bins < 0 || cfg.Recorder.FrameRate < 0 {
		return ErrInvalidRecorderConfigs
	}

	return nil
}

func (cfg *WidgetConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" || strings.TrimSpace(cfg.Storage.ExportsDir) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.NoticeTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Timer.TotalSeconds < 1 {
		return ErrInvalidTimerConfigs
	}

	r := cfg.Recorder
	if r.SampleRate <= 0 || r.FrameRate <= 0 || r.FrameRate > 120 {
		return ErrInvalidRecorderConfigs
	}
	if r.Bins < 2 || r.Bins&(r.Bins-1) != 0 {
		return ErrInvalidRecorderConfigs
	}
	if r.CanvasWidth < 1 || r.CanvasHeight < 1 {
		return ErrInvalidRecorderConfigs
	}

	if cfg.Preview.Enabled() && cfg.Preview.RequestTimeout <= 0 {
		return ErrInvalidPreviewConfigs
	}

	return nil
}
