package adapter

import "errors"

var (
	// ErrEmptyFileName is returned by a Downloader for an empty file name.
	ErrEmptyFileName = errors.New("empty file name")

	// ErrUnsafeFileName is returned for names containing path separators.
	ErrUnsafeFileName = errors.New("file name must not contain path separators")

	// ErrNoFreeName is returned when every suffixed variant of a name exists.
	ErrNoFreeName = errors.New("no free file name")
)
