package service_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-desk-widget/internal/app"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/mock"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

func newTimer(total int) (service.TimerService, *fakeScheduler, *countingAlerter, service.NoticeBoard) {
	sched := &fakeScheduler{}
	alerter := &countingAlerter{}
	notices := service.NewNoticeBoard(time.Minute, logger.Nop())
	return service.NewTimerService(total, sched, alerter, notices, logger.Nop()), sched, alerter, notices
}

// ── Start / Tick ─────────────────────────────────────────────────────────────

func TestTimer_Initial(t *testing.T) {
	timer, _, _, _ := newTimer(300)

	snap := timer.Snapshot()
	assert.Equal(t, models.TimerSnapshot{Remaining: 300, Total: 300}, snap)
	assert.Equal(t, "05:00", snap.Clock())
}

func TestTimer_TickArithmetic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("k ticks leave total-k seconds", prop.ForAll(
		func(total, k int) bool {
			if k >= total {
				k = total - 1
			}
			timer, sched, alerter, _ := newTimer(total)
			timer.Start()
			for range k {
				sched.fire(time.Second)
			}
			snap := timer.Snapshot()
			return snap.Remaining == total-k && snap.Running && !snap.Completed && alerter.count() == 0
		},
		gen.IntRange(1, 600),
		gen.IntRange(0, 600),
	))

	properties.TestingRun(t)
}

func TestTimer_ExportedTickSteps(t *testing.T) {
	timer, _, _, _ := newTimer(10)
	timer.Start()
	timer.Tick()
	timer.Tick()

	snap := timer.Snapshot()
	assert.Equal(t, 8, snap.Remaining)
	assert.InDelta(t, 20, snap.Progress(), 1e-9)
}

func TestTimer_StartWhileRunningIsNoop(t *testing.T) {
	timer, sched, _, _ := newTimer(10)
	timer.Start()
	timer.Start()

	assert.Len(t, sched.all(), 1)
}

// ── Pause / Reset ────────────────────────────────────────────────────────────

func TestTimer_PauseResume(t *testing.T) {
	timer, sched, _, _ := newTimer(300)
	timer.Start()
	for range 3 {
		sched.fire(time.Second)
	}

	timer.Pause()
	assert.False(t, timer.Snapshot().Running)
	assert.Empty(t, sched.live())

	timer.Tick()
	assert.Equal(t, 297, timer.Snapshot().Remaining)

	timer.Start()
	sched.fire(time.Second)
	assert.Equal(t, 296, timer.Snapshot().Remaining)
	assert.True(t, timer.Snapshot().Running)
}

func TestTimer_StaleTickIgnored(t *testing.T) {
	timer, sched, _, _ := newTimer(300)
	timer.Start()
	first := sched.all()[0]

	timer.Pause()
	timer.Start()

	// a tick of the first run that was already dispatched
	first.onTick()
	assert.Equal(t, 300, timer.Snapshot().Remaining)

	sched.fire(time.Second)
	assert.Equal(t, 299, timer.Snapshot().Remaining)
}

func TestTimer_Reset(t *testing.T) {
	timer, sched, _, _ := newTimer(60)
	timer.Start()
	sched.fire(time.Second)

	timer.Reset()
	assert.Equal(t, models.TimerSnapshot{Remaining: 60, Total: 60}, timer.Snapshot())
	assert.Empty(t, sched.live())
}

func TestTimer_PauseWhenIdleIsNoop(t *testing.T) {
	timer, sched, _, _ := newTimer(60)
	timer.Pause()
	assert.Empty(t, sched.all())
	assert.Equal(t, 60, timer.Snapshot().Remaining)
}

// ── Completion ───────────────────────────────────────────────────────────────

func TestTimer_CompletesOnce(t *testing.T) {
	timer, sched, alerter, notices := newTimer(3)
	timer.Start()
	for range 5 {
		sched.fire(time.Second)
	}
	timer.Tick()

	snap := timer.Snapshot()
	assert.Zero(t, snap.Remaining)
	assert.False(t, snap.Running)
	assert.True(t, snap.Completed)
	assert.Equal(t, "00:00", snap.Clock())
	assert.Empty(t, sched.live())

	require.Equal(t, 1, alerter.count())
	assert.Equal(t, app.MsgTimerCompletedTitle, alerter.titles[0])
	assert.Equal(t, "Timer completed! 3 seconds have passed.", alerter.messages[0])

	latest, ok := notices.Latest()
	require.True(t, ok)
	assert.Equal(t, models.SeveritySuccess, latest.Severity)
}

func TestTimer_CompletionMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	alerter := mock.NewMockAlerter(ctrl)
	sched := &fakeScheduler{}
	notices := service.NewNoticeBoard(time.Minute, logger.Nop())

	alerter.EXPECT().Alert(app.MsgTimerCompletedTitle, "Timer completed! 5 minutes have passed.").Times(1)

	timer := service.NewTimerService(300, sched, alerter, notices, logger.Nop())
	timer.Start()
	for range 300 {
		sched.fire(time.Second)
	}
	assert.True(t, timer.Snapshot().Completed)
}

func TestTimer_RestartAfterCompletion(t *testing.T) {
	timer, sched, alerter, _ := newTimer(2)
	timer.Start()
	sched.fire(time.Second)
	sched.fire(time.Second)
	require.True(t, timer.Snapshot().Completed)

	timer.Start()
	snap := timer.Snapshot()
	assert.Equal(t, 2, snap.Remaining)
	assert.True(t, snap.Running)
	assert.False(t, snap.Completed)

	sched.fire(time.Second)
	sched.fire(time.Second)
	assert.Equal(t, 2, alerter.count())
}
