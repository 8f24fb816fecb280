package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/adapter"
	"github.com/MKhiriev/go-desk-widget/internal/app"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/workers"
	"github.com/MKhiriev/go-desk-widget/models"
)

const timerTickInterval = time.Second

type timerService struct {
	scheduler workers.Scheduler
	alerter   adapter.Alerter
	notices   NoticeBoard
	logger    *logger.Logger

	mu        sync.Mutex
	total     int
	remaining int
	running   bool
	completed bool
	handle    workers.CancelHandle
	// generation is bumped whenever ticking stops; a scheduled tick of an
	// older generation does nothing.
	generation uint64
}

// NewTimerService returns an idle countdown of totalSeconds.
func NewTimerService(totalSeconds int, scheduler workers.Scheduler, alerter adapter.Alerter, notices NoticeBoard, logger *logger.Logger) TimerService {
	return &timerService{
		scheduler: scheduler,
		alerter:   alerter,
		notices:   notices,
		logger:    logger,
		total:     totalSeconds,
		remaining: totalSeconds,
	}
}

func (s *timerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	if s.remaining <= 0 {
		s.remaining = s.total
	}
	s.completed = false
	s.running = true

	s.generation++
	gen := s.generation
	s.handle = s.scheduler.ScheduleRepeating(timerTickInterval, func() {
		s.tick(gen, true)
	})

	s.logger.Debug().Str("func", "timerService.Start").Int("remaining", s.remaining).Msg("timer started")
}

func (s *timerService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.stopLocked()

	s.logger.Debug().Str("func", "timerService.Pause").Int("remaining", s.remaining).Msg("timer paused")
}

func (s *timerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.remaining = s.total
	s.completed = false
}

func (s *timerService) Tick() {
	s.tick(0, false)
}

func (s *timerService) Snapshot() models.TimerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.TimerSnapshot{
		Remaining: s.remaining,
		Total:     s.total,
		Running:   s.running,
		Completed: s.completed,
	}
}

// tick decrements a running countdown. Scheduled ticks carry the generation
// they were started with and are dropped once it is stale.
func (s *timerService) tick(gen uint64, scheduled bool) {
	s.mu.Lock()
	if (scheduled && gen != s.generation) || !s.running {
		s.mu.Unlock()
		return
	}

	s.remaining--
	done := s.remaining <= 0
	if done {
		s.remaining = 0
		s.completed = true
		s.stopLocked()
	}
	s.mu.Unlock()

	if done {
		s.complete()
	}
}

// stopLocked cancels the tick. s.mu must be held.
func (s *timerService) stopLocked() {
	s.running = false
	s.generation++
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
}

func (s *timerService) complete() {
	message := completionMessage(s.total)
	s.logger.Info().Str("func", "timerService.complete").Int("total", s.total).Msg("timer completed")

	s.notices.Success(message)
	s.alerter.Alert(app.MsgTimerCompletedTitle, message)
}

// completionMessage renders the completion notice for a countdown of total
// seconds, in whole minutes when possible.
func completionMessage(total int) string {
	n, unit := total, "second"
	if total > 0 && total%60 == 0 {
		n, unit = total/60, "minute"
	}

	verb := "has"
	if n != 1 {
		unit += "s"
		verb = "have"
	}

	return fmt.Sprintf(app.MsgTimerCompleted, fmt.Sprintf("%d %s", n, unit), verb)
}
