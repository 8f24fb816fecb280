package audio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

const framesPerBuffer = 1024

// PortAudio is the host audio backend. It implements [Capturer] and
// [Player] on the default input and output devices.
type PortAudio struct {
	logger *logger.Logger
}

// NewPortAudio initialises the PortAudio library. Close must be called once
// the device is no longer needed.
func NewPortAudio(log *logger.Logger) (*PortAudio, error) {
	if err := portaudio.Initialize(); err != nil {
		log.Err(err).Str("func", "audio.NewPortAudio").Msg("error initializing PortAudio")
		return nil, &DeviceError{Op: "initialize", Kind: ErrNoDevice, Err: err}
	}
	log.Debug().Str("func", "audio.NewPortAudio").Msg("PortAudio initialized")

	return &PortAudio{logger: log}, nil
}

// Close terminates the PortAudio library.
func (p *PortAudio) Close() error {
	return portaudio.Terminate()
}

func (p *PortAudio) OpenCapture(_ context.Context, sampleRate int, onChunk func(samples []int16)) (Stream, error) {
	dev, err := portaudio.DefaultInputDevice()
	if err != nil || dev == nil {
		p.logger.Err(err).Str("func", "PortAudio.OpenCapture").Msg("no default input device")
		return nil, &DeviceError{Op: "open input", Kind: ErrNoDevice, Err: err}
	}
	if dev.MaxInputChannels < 1 {
		return nil, &DeviceError{Op: "open input", Kind: ErrNoDevice, Err: errors.New(dev.Name + " has no input channels")}
	}

	params := portaudio.HighLatencyParameters(dev, nil)
	params.Input.Channels = 1
	params.SampleRate = float64(sampleRate)
	params.FramesPerBuffer = framesPerBuffer

	s := &captureStream{}
	stream, err := portaudio.OpenStream(params, func(in []int16) {
		if s.closed.Load() {
			return
		}
		onChunk(in)
	})
	if err != nil {
		p.logger.Err(err).Str("func", "PortAudio.OpenCapture").Str("device", dev.Name).Msg("error opening recording stream")
		return nil, &DeviceError{Op: "open input", Kind: ErrAccessDenied, Err: err}
	}

	if err = stream.Start(); err != nil {
		_ = stream.Close()
		p.logger.Err(err).Str("func", "PortAudio.OpenCapture").Str("device", dev.Name).Msg("error starting recording")
		return nil, &DeviceError{Op: "start input", Kind: ErrAccessDenied, Err: err}
	}
	s.stream = stream

	p.logger.Info().Str("func", "PortAudio.OpenCapture").Str("device", dev.Name).Int("sample_rate", sampleRate).Msg("recording started")
	return s, nil
}

func (p *PortAudio) Play(ctx context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}

	dev, err := portaudio.DefaultOutputDevice()
	if err != nil || dev == nil {
		return &DeviceError{Op: "open output", Kind: ErrNoDevice, Err: err}
	}

	params := portaudio.HighLatencyParameters(nil, dev)
	params.Output.Channels = 1
	params.SampleRate = float64(sampleRate)
	params.FramesPerBuffer = framesPerBuffer

	finished := make(chan struct{})
	var once sync.Once
	pos := 0
	stream, err := portaudio.OpenStream(params, func(out []int16) {
		n := copy(out, samples[pos:])
		pos += n
		clear(out[n:])
		if pos >= len(samples) {
			once.Do(func() { close(finished) })
		}
	})
	if err != nil {
		return &DeviceError{Op: "open output", Kind: ErrAccessDenied, Err: err}
	}
	defer stream.Close()

	if err = stream.Start(); err != nil {
		return &DeviceError{Op: "start output", Kind: ErrAccessDenied, Err: err}
	}

	select {
	case <-finished:
	case <-ctx.Done():
	}

	// Stop lets the queued buffers drain
	if err = stream.Stop(); err != nil {
		p.logger.Err(err).Str("func", "PortAudio.Play").Msg("error stopping playback stream")
	}
	return ctx.Err()
}

type captureStream struct {
	stream *portaudio.Stream
	closed atomic.Bool
	once   sync.Once
	err    error
}

func (s *captureStream) Close() error {
	s.once.Do(func() {
		s.closed.Store(true)
		if err := s.stream.Stop(); err != nil {
			s.err = err
		}
		if err := s.stream.Close(); err != nil && s.err == nil {
			s.err = err
		}
	})
	return s.err
}
