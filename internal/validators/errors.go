package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNote         = errors.New("please enter a title or content for the note")
	ErrInvalidNoteID     = errors.New("invalid note id")
	ErrInvalidTimestamps = errors.New("invalid note timestamps")
	ErrInvalidFormat     = errors.New("invalid export format")
	ErrInvalidFileName   = errors.New("invalid file name")
)
