package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty database path or export
	// directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates an unknown time zone or a non-positive
	// notice lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTimerConfigs indicates a countdown shorter than one second.
	ErrInvalidTimerConfigs = errors.New("invalid timer configuration")
	// ErrInvalidRecorderConfigs indicates a bad sample rate, frame rate,
	// canvas size, or a bin count that is not a power of two.
	ErrInvalidRecorderConfigs = errors.New("invalid recorder configuration")
	// ErrInvalidPreviewConfigs indicates an enabled preview server without a
	// request timeout.
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
)
