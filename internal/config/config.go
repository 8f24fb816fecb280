// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the desk
// widget. It is populated by merging values from environment variables,
// command-line flags, an optional config file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: logging, notices and time zone.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value database and the export directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Timer holds countdown settings.
	Timer Timer `envPrefix:"TIMER_"`

	// Recorder holds capture and visualization settings.
	Recorder Recorder `envPrefix:"RECORDER_"`

	// Preview holds the optional local HTTP preview server settings.
	Preview Preview `envPrefix:"PREVIEW_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogFile is the log destination. Relative paths resolve next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// NoticeTTL is how long a transient notice stays on screen.
	// Env: APP_NOTICE_TTL
	NoticeTTL time.Duration `env:"NOTICE_TTL"`

	// TimeZone is an IANA zone name used to format dates for display
	// and exports ("Local" for the system zone).
	// Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Exports holds the download directory settings.
	Exports Exports `envPrefix:"EXPORTS_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Exports holds the settings of the file download directory.
type Exports struct {
	// Dir receives every exported note collection and recording.
	// Env: STORAGE_EXPORTS_DIR
	Dir string `env:"DIR"`
}

// Timer holds countdown settings.
type Timer struct {
	// Total is the countdown length, truncated to whole seconds.
	// Env: TIMER_TOTAL
	Total time.Duration `env:"TOTAL"`

	// Silent disables the audible completion cue.
	// Env: TIMER_SILENT
	Silent bool `env:"SILENT"`
}

// Recorder holds capture and visualization settings.
type Recorder struct {
	// SampleRate is the capture rate in Hz.
	// Env: RECORDER_SAMPLE_RATE
	SampleRate int `env:"SAMPLE_RATE"`

	// Bins is the number of frequency bars drawn. Must be a power of two.
	// Env: RECORDER_BINS
	Bins int `env:"BINS"`

	// FrameRate is the number of visualization redraws per second.
	// Env: RECORDER_FRAME_RATE
	FrameRate int `env:"FRAME_RATE"`

	// CanvasWidth and CanvasHeight are the visualization size in pixels;
	// the terminal draws 2x4 pixels per cell.
	// Env: RECORDER_CANVAS_WIDTH, RECORDER_CANVAS_HEIGHT
	CanvasWidth  int `env:"CANVAS_WIDTH"`
	CanvasHeight int `env:"CANVAS_HEIGHT"`
}

// Preview holds the optional local HTTP preview server settings.
type Preview struct {
	// Address is the listen address in "host:port" form. Empty disables the
	// preview server.
	// Env: PREVIEW_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every preview request.
	// Env: PREVIEW_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
