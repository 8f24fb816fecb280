package service

import "errors"

var (
	// ErrPermission is returned when the microphone is denied or missing.
	ErrPermission = errors.New("microphone access denied or unavailable")

	// ErrValidation is returned for user input that cannot be accepted, such
	// as a note with neither title nor content.
	ErrValidation = errors.New("validation error")

	// ErrNoRecording is returned when exporting before a recording exists.
	ErrNoRecording = errors.New("no recording available")

	// ErrNothingToExport is returned when there are no notes to export.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrNothingToClear is returned when clearing an empty collection.
	ErrNothingToClear = errors.New("nothing to clear")

	// ErrGenerationFailure is returned when no document could be generated.
	ErrGenerationFailure = errors.New("document generation failed")
)
