package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-desk-widget/internal/app"
	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/mock"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/internal/validators"
	"github.com/MKhiriev/go-desk-widget/models"
)

var testRecorderConfig = config.WidgetRecorder{
	SampleRate:   8000,
	Bins:         64,
	FrameRate:    25,
	CanvasWidth:  128,
	CanvasHeight: 32,
}

type recorderFixture struct {
	recorder   service.RecorderService
	sched      *fakeScheduler
	notices    service.NoticeBoard
	capturer   *mock.MockCapturer
	stream     *mock.MockStream
	player     *mock.MockPlayer
	downloader *mock.MockDownloader

	onChunk func([]int16)
}

func newRecorderFixture(t *testing.T) *recorderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &recorderFixture{
		sched:      &fakeScheduler{},
		notices:    service.NewNoticeBoard(time.Minute, logger.Nop()),
		capturer:   mock.NewMockCapturer(ctrl),
		stream:     mock.NewMockStream(ctrl),
		player:     mock.NewMockPlayer(ctrl),
		downloader: mock.NewMockDownloader(ctrl),
	}
	f.recorder = service.NewRecorderService(
		testRecorderConfig,
		time.UTC,
		f.capturer,
		f.player,
		f.sched,
		f.downloader,
		validators.NewNoteValidator(),
		f.notices,
		logger.Nop(),
	)
	return f
}

// expectOpen makes the next OpenCapture succeed and keeps its callback.
func (f *recorderFixture) expectOpen() {
	f.capturer.EXPECT().OpenCapture(gomock.Any(), testRecorderConfig.SampleRate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, onChunk func([]int16)) (audio.Stream, error) {
			f.onChunk = onChunk
			return f.stream, nil
		})
}

func (f *recorderFixture) record(t *testing.T, chunks ...[]int16) {
	t.Helper()
	f.expectOpen()
	f.stream.EXPECT().Close().Return(nil)

	require.NoError(t, f.recorder.StartRecording(context.Background()))
	for _, c := range chunks {
		f.onChunk(c)
	}
	require.NoError(t, f.recorder.StopRecording(context.Background()))
}

func (f *recorderFixture) latest(t *testing.T) models.Notice {
	t.Helper()
	n, ok := f.notices.Latest()
	require.True(t, ok)
	return n
}

func tone(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		if i%4 < 2 {
			out[i] = 12000
		} else {
			out[i] = -12000
		}
	}
	return out
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRecorder_PermissionDenied(t *testing.T) {
	f := newRecorderFixture(t)
	denied := &audio.DeviceError{Op: "open input", Kind: audio.ErrAccessDenied}
	f.capturer.EXPECT().OpenCapture(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, denied)

	err := f.recorder.StartRecording(context.Background())
	assert.ErrorIs(t, err, service.ErrPermission)
	assert.ErrorIs(t, err, audio.ErrAccessDenied)

	snap := f.recorder.Snapshot()
	assert.False(t, snap.Recording)
	assert.False(t, snap.HasRecording)
	assert.Empty(t, f.sched.all())
	assert.Equal(t, app.MsgMicrophoneError, f.latest(t).Message)
}

func TestRecorder_EmptyRecording(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t)

	snap := f.recorder.Snapshot()
	assert.False(t, snap.Recording)
	assert.True(t, snap.HasRecording)
	assert.Zero(t, snap.SizeKB)
	assert.Equal(t, "Recording saved (0 KB)", f.latest(t).Message)

	f.downloader.EXPECT().Save(gomock.Any(), "recording.wav", gomock.Len(44)).Return("/exports/recording.wav", nil)
	result, err := f.recorder.ExportAs(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 44, result.Size)
	assert.Empty(t, result.Warning)
}

func TestRecorder_StartSchedulesTicks(t *testing.T) {
	f := newRecorderFixture(t)
	f.expectOpen()

	require.NoError(t, f.recorder.StartRecording(context.Background()))
	require.NoError(t, f.recorder.StartRecording(context.Background()))

	tasks := f.sched.all()
	require.Len(t, tasks, 2)
	assert.Equal(t, time.Second, tasks[0].interval)
	assert.Equal(t, 40*time.Millisecond, tasks[1].interval)
	assert.True(t, f.recorder.Snapshot().Recording)

	f.stream.EXPECT().Close().Return(nil)
	require.NoError(t, f.recorder.StopRecording(context.Background()))
	assert.Empty(t, f.sched.live())
}

func TestRecorder_StopWhenIdleIsNoop(t *testing.T) {
	f := newRecorderFixture(t)
	require.NoError(t, f.recorder.StopRecording(context.Background()))
	assert.False(t, f.recorder.Snapshot().HasRecording)
}

func TestRecorder_CollectsChunks(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(1000), tone(1048))

	f.downloader.EXPECT().Save(gomock.Any(), "take.wav", gomock.Len(44+2*2048)).Return("/exports/take.wav", nil)
	result, err := f.recorder.ExportAs(context.Background(), "take", "wav")
	require.NoError(t, err)
	assert.Equal(t, "take.wav", result.FileName)
	assert.Equal(t, 4, f.recorder.Snapshot().SizeKB)
}

func TestRecorder_ChunkAfterStopIgnored(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(512))
	before := f.recorder.Snapshot().SizeKB

	f.onChunk(tone(4096))
	assert.Equal(t, before, f.recorder.Snapshot().SizeKB)
}

// ── Visualization ────────────────────────────────────────────────────────────

func TestRecorder_DrawsFrames(t *testing.T) {
	f := newRecorderFixture(t)
	f.expectOpen()
	require.NoError(t, f.recorder.StartRecording(context.Background()))

	f.onChunk(tone(256))
	f.sched.fire(testRecorderConfig.FrameInterval())

	snap := f.recorder.Snapshot()
	require.Len(t, snap.Levels, 64)
	assert.Equal(t, 128, snap.Frame.Width)
	assert.Equal(t, 32, snap.Frame.Height)

	bars := 0
	for _, px := range snap.Frame.Pixels {
		if px == audio.BarColor {
			bars++
		}
	}
	assert.Positive(t, bars)

	f.stream.EXPECT().Close().Return(nil)
	require.NoError(t, f.recorder.StopRecording(context.Background()))

	snap = f.recorder.Snapshot()
	assert.Empty(t, snap.Levels)
	for _, px := range snap.Frame.Pixels {
		assert.Equal(t, audio.BackgroundColor, px)
	}
}

func TestRecorder_StaleFrameTickIgnored(t *testing.T) {
	f := newRecorderFixture(t)
	f.expectOpen()
	require.NoError(t, f.recorder.StartRecording(context.Background()))
	f.onChunk(tone(256))
	frameTick := f.sched.all()[1]

	f.stream.EXPECT().Close().Return(nil)
	require.NoError(t, f.recorder.StopRecording(context.Background()))

	frameTick.onTick()
	for _, px := range f.recorder.Snapshot().Frame.Pixels {
		assert.Equal(t, audio.BackgroundColor, px)
	}
}

// ── Play ─────────────────────────────────────────────────────────────────────

func TestRecorder_PlayWithoutRecording(t *testing.T) {
	f := newRecorderFixture(t)
	assert.NoError(t, f.recorder.Play(context.Background()))
}

func TestRecorder_Play(t *testing.T) {
	f := newRecorderFixture(t)
	samples := tone(300)
	f.record(t, samples)

	f.player.EXPECT().Play(gomock.Any(), samples, testRecorderConfig.SampleRate).Return(nil)
	assert.NoError(t, f.recorder.Play(context.Background()))
}

func TestRecorder_PlayError(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(300))

	f.player.EXPECT().Play(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no output"))
	assert.Error(t, f.recorder.Play(context.Background()))
	assert.Equal(t, app.MsgPlaybackError, f.latest(t).Message)
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestRecorder_ExportWithoutRecording(t *testing.T) {
	f := newRecorderFixture(t)

	_, err := f.recorder.ExportAs(context.Background(), "x", "wav")
	assert.ErrorIs(t, err, service.ErrNoRecording)
	assert.Equal(t, app.MsgNoRecording, f.latest(t).Message)
}

func TestRecorder_ExportNonWAV(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(100))

	f.downloader.EXPECT().Save(gomock.Any(), "take.mp3", gomock.Len(44+200)).Return("/exports/take (1).mp3", nil)
	result, err := f.recorder.ExportAs(context.Background(), "take", "mp3")
	require.NoError(t, err)
	assert.Equal(t, "Note: Audio will be exported as WAV format. MP3 conversion requires additional libraries.", result.Warning)
	assert.Equal(t, "take (1).mp3", result.FileName)
	assert.Equal(t, app.MsgAudioExported, f.latest(t).Message)

	var warned bool
	for _, n := range f.notices.Active() {
		warned = warned || (n.Message == result.Warning && n.Severity == models.SeverityInfo)
	}
	assert.True(t, warned)
}

func TestRecorder_ExportInvalidName(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(100))

	_, err := f.recorder.ExportAs(context.Background(), "a/b", "wav")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestRecorder_ExportDownloadFailure(t *testing.T) {
	f := newRecorderFixture(t)
	f.record(t, tone(100))
	f.downloader.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("read-only"))

	_, err := f.recorder.ExportAs(context.Background(), "x", "wav")
	assert.Error(t, err)
	assert.Equal(t, app.MsgExportError, f.latest(t).Message)
}

func TestRecorder_DefaultRecordingName(t *testing.T) {
	f := newRecorderFixture(t)
	assert.Regexp(t, `^recording_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}$`, f.recorder.DefaultRecordingName())
}
