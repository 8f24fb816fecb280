package audio

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/audio_mock.go -package=mock

// Capturer opens the default microphone.
type Capturer interface {
	// OpenCapture starts capturing mono 16-bit samples at sampleRate and
	// hands each buffer to onChunk on the driver's goroutine. onChunk must
	// not retain the slice.
	OpenCapture(ctx context.Context, sampleRate int, onChunk func(samples []int16)) (Stream, error)
}

// Stream is a running capture.
type Stream interface {
	// Close stops the capture and releases the device. No onChunk call
	// starts after Close returns.
	Close() error
}

// Player plays mono 16-bit samples on the default output device.
type Player interface {
	// Play blocks until all samples were played or ctx is cancelled.
	Play(ctx context.Context, samples []int16, sampleRate int) error
}
