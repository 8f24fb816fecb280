package document

import "errors"

var (
	// ErrGenerationFailure is returned by a [Chain] when no generator
	// produced a document.
	ErrGenerationFailure = errors.New("document generation failed")

	// ErrNoGenerators is returned by a [Chain] with no available generator.
	ErrNoGenerators = errors.New("no document generators configured")
)
