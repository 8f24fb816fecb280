package audio

import (
	"context"
	"errors"
	"fmt"
)

// Device availability errors. Use [errors.Is] to match them through a
// [DeviceError].
var (
	// ErrNoDevice is returned when the host exposes no default input or
	// output device.
	ErrNoDevice = errors.New("no audio device available")

	// ErrAccessDenied is returned when a device exists but cannot be opened
	// or started, which is how denied microphone access surfaces.
	ErrAccessDenied = errors.New("audio device access denied")
)

// DeviceError describes a failed device operation.
type DeviceError struct {
	// Op is the operation that failed ("open input", "start output", ...).
	Op string
	// Kind is ErrNoDevice or ErrAccessDenied.
	Kind error
	// Err is the underlying driver error, if any.
	Err error
}

func (e *DeviceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the driver error to errors.Is.
func (e *DeviceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Unavailable stands in for a missing audio backend. Every operation fails
// with a [DeviceError] of kind [ErrNoDevice] wrapping Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) OpenCapture(context.Context, int, func([]int16)) (Stream, error) {
	return nil, &DeviceError{Op: "open input", Kind: ErrNoDevice, Err: u.Err}
}

func (u Unavailable) Play(context.Context, []int16, int) error {
	return &DeviceError{Op: "open output", Kind: ErrNoDevice, Err: u.Err}
}
