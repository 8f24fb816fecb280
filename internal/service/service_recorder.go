package service

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/adapter"
	"github.com/MKhiriev/go-desk-widget/internal/app"
	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/utils"
	"github.com/MKhiriev/go-desk-widget/internal/validators"
	"github.com/MKhiriev/go-desk-widget/internal/workers"
	"github.com/MKhiriev/go-desk-widget/models"
)

const (
	elapsedTickInterval = time.Second

	defaultRecordingName   = "recording"
	defaultRecordingFormat = "wav"
	recordingNamePrefix    = "recording_"
	recordingNameLayout    = "2006-01-02_15-04-05"
)

type recorderService struct {
	cfg        config.WidgetRecorder
	loc        *time.Location
	capturer   audio.Capturer
	player     audio.Player
	scheduler  workers.Scheduler
	downloader adapter.Downloader
	validator  validators.Validator
	notices    NoticeBoard
	logger     *logger.Logger
	now        func() time.Time

	mu        sync.Mutex
	recording bool
	starting  bool
	startedAt time.Time
	elapsed   time.Duration
	stream    audio.Stream
	ticks     []workers.CancelHandle
	// chunks is append-only while recording.
	chunks [][]int16
	recent []int16
	// generation is bumped on start and stop; capture callbacks and ticks of
	// an older generation are dropped.
	generation uint64

	analyser *audio.Analyser
	canvas   *audio.Canvas
	levels   []float64

	final        *models.Blob
	finalSamples []int16
}

// NewRecorderService returns an idle recorder.
func NewRecorderService(
	cfg config.WidgetRecorder,
	loc *time.Location,
	capturer audio.Capturer,
	player audio.Player,
	scheduler workers.Scheduler,
	downloader adapter.Downloader,
	validator validators.Validator,
	notices NoticeBoard,
	logger *logger.Logger,
) RecorderService {
	if loc == nil {
		loc = time.Local
	}
	return &recorderService{
		cfg:        cfg,
		loc:        loc,
		capturer:   capturer,
		player:     player,
		scheduler:  scheduler,
		downloader: downloader,
		validator:  validator,
		notices:    notices,
		logger:     logger,
		now:        time.Now,
		analyser:   audio.NewAnalyser(cfg.Bins),
		canvas:     audio.NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight),
	}
}

func (s *recorderService) StartRecording(ctx context.Context) error {
	s.mu.Lock()
	if s.recording || s.starting {
		s.mu.Unlock()
		return nil
	}
	s.starting = true
	s.generation++
	gen := s.generation
	s.chunks = nil
	s.recent = nil
	s.elapsed = 0
	s.analyser.Reset()
	s.mu.Unlock()

	stream, err := s.capturer.OpenCapture(ctx, s.cfg.SampleRate, func(samples []int16) {
		s.onChunk(gen, samples)
	})
	if err != nil {
		s.mu.Lock()
		s.starting = false
		s.mu.Unlock()

		s.logger.Err(err).Str("func", "recorderService.StartRecording").Msg("error opening microphone")
		s.notices.Error(app.MsgMicrophoneError)
		return fmt.Errorf("%w: %w", ErrPermission, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.starting = false
	s.recording = true
	s.stream = stream
	s.startedAt = s.now()
	s.ticks = []workers.CancelHandle{
		s.scheduler.ScheduleRepeating(elapsedTickInterval, func() { s.tickElapsed(gen) }),
		s.scheduler.ScheduleRepeating(s.cfg.FrameInterval(), func() { s.drawFrame(gen) }),
	}

	s.logger.Info().Str("func", "recorderService.StartRecording").Int("sample_rate", s.cfg.SampleRate).Msg("recording started")
	return nil
}

func (s *recorderService) onChunk(gen uint64, samples []int16) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	chunk := slices.Clone(samples)
	s.chunks = append(s.chunks, chunk)

	s.recent = append(s.recent, chunk...)
	if over := len(s.recent) - s.analyser.FFTSize(); over > 0 {
		s.recent = append(s.recent[:0], s.recent[over:]...)
	}
}

func (s *recorderService) tickElapsed(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.recording {
		return
	}
	s.elapsed = s.now().Sub(s.startedAt)
}

func (s *recorderService) drawFrame(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.recording {
		return
	}
	s.levels = s.analyser.Levels(s.recent)
	audio.DrawBars(s.canvas, s.levels)
}

func (s *recorderService) StopRecording(ctx context.Context) error {
	s.mu.Lock()
	if !s.recording {
		s.mu.Unlock()
		return nil
	}
	s.recording = false
	s.generation++
	stream, ticks, chunks := s.stream, s.ticks, s.chunks
	s.stream, s.ticks, s.chunks, s.recent = nil, nil, nil, nil
	s.elapsed = s.now().Sub(s.startedAt)
	s.levels = nil
	s.analyser.Reset()
	s.canvas.Clear(audio.BackgroundColor)
	s.mu.Unlock()

	for _, h := range ticks {
		h.Cancel()
	}
	if err := stream.Close(); err != nil {
		s.logger.Err(err).Str("func", "recorderService.StopRecording").Msg("error closing capture stream")
	}

	samples := slices.Concat(chunks...)
	blob, err := audio.EncodeWAV(samples, s.cfg.SampleRate)
	if err != nil {
		s.logger.Err(err).Str("func", "recorderService.StopRecording").Msg("error encoding recording")
		return fmt.Errorf("error finalizing recording: %w", err)
	}

	s.mu.Lock()
	s.final = blob
	s.finalSamples = samples
	s.mu.Unlock()

	s.logger.Info().Str("func", "recorderService.StopRecording").
		Int("samples", len(samples)).Int("bytes", blob.Size()).Msg("recording finalized")
	s.notices.Success(fmt.Sprintf(app.MsgRecordingSaved, blob.SizeKB()))
	return nil
}

func (s *recorderService) Play(ctx context.Context) error {
	s.mu.Lock()
	samples, has := s.finalSamples, s.final != nil
	s.mu.Unlock()

	if !has {
		return nil
	}

	if err := s.player.Play(ctx, samples, s.cfg.SampleRate); err != nil {
		s.logger.Err(err).Str("func", "recorderService.Play").Msg("error playing recording")
		s.notices.Error(app.MsgPlaybackError)
		return fmt.Errorf("error playing recording: %w", err)
	}
	return nil
}

func (s *recorderService) ExportAs(ctx context.Context, fileName, format string) (models.ExportResult, error) {
	s.mu.Lock()
	blob := s.final
	s.mu.Unlock()

	if blob == nil {
		s.notices.Error(app.MsgNoRecording)
		return models.ExportResult{}, ErrNoRecording
	}

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		fileName = defaultRecordingName
	}
	format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if format == "" {
		format = defaultRecordingFormat
	}

	req := models.ExportRequest{FileName: fileName}
	if err := s.validator.Validate(ctx, req, validators.FieldFileName); err != nil {
		s.notices.Error(app.MsgInvalidFileName)
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var result models.ExportResult
	if format != defaultRecordingFormat {
		result.Warning = fmt.Sprintf(app.MsgAudioFormatWarning, strings.ToUpper(format))
		s.notices.Info(result.Warning)
	}

	path, err := s.downloader.Save(ctx, utils.WithExtension(fileName, format), blob.Data)
	if err != nil {
		s.logger.Err(err).Str("func", "recorderService.ExportAs").Msg("error saving recording")
		s.notices.Error(app.MsgExportError)
		return models.ExportResult{}, fmt.Errorf("error saving recording: %w", err)
	}

	result.FileName = filepath.Base(path)
	result.Path = path
	result.Size = blob.Size()

	s.logger.Info().Str("func", "recorderService.ExportAs").Str("path", path).Msg("recording exported")
	s.notices.Success(app.MsgAudioExported)
	return result, nil
}

func (s *recorderService) DefaultRecordingName() string {
	return utils.StampedName(recordingNamePrefix, recordingNameLayout, s.now().In(s.loc))
}

func (s *recorderService) Snapshot() models.RecorderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.RecorderSnapshot{
		Recording:    s.recording,
		HasRecording: s.final != nil,
		Elapsed:      s.elapsed,
		SizeKB:       s.final.SizeKB(),
		Levels:       slices.Clone(s.levels),
		Frame: models.Frame{
			Width:  s.canvas.Width(),
			Height: s.canvas.Height(),
			Pixels: s.canvas.Snapshot(),
		},
	}
}
