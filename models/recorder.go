package models

import (
	"math"
	"time"
)

// WAVMIMEType is the container produced by the recorder.
const WAVMIMEType = "audio/wav"

// Blob is an immutable finalized payload ready for playback or download.
type Blob struct {
	Data     []byte
	MIMEType string
}

// Size returns the payload length in bytes.
func (b *Blob) Size() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// SizeKB returns the payload size in kilobytes, rounded.
func (b *Blob) SizeKB() int {
	return int(math.Round(float64(b.Size()) / 1024))
}

// RecorderSnapshot is a read-only view of the recorder state.
type RecorderSnapshot struct {
	Recording    bool
	HasRecording bool
	Elapsed      time.Duration
	SizeKB       int
	// Levels holds the latest normalized frequency magnitudes in [0,1].
	Levels []float64
	// Frame is the latest visualization canvas.
	Frame Frame
}

// Frame is a rendered visualization canvas: Width*Height hex colours,
// row-major from the top-left.
type Frame struct {
	Width  int
	Height int
	Pixels []string
}

// At returns the colour at x, y, or "" outside the frame.
func (f Frame) At(x, y int) string {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height || len(f.Pixels) != f.Width*f.Height {
		return ""
	}
	return f.Pixels[y*f.Width+x]
}

// Clock renders the elapsed recording time as MM:SS.
func (s RecorderSnapshot) Clock() string {
	return FormatClock(int(s.Elapsed / time.Second))
}
