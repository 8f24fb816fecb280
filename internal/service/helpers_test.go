package service_test

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/workers"
)

// fakeScheduler records scheduled tasks and fires them on demand.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

type fakeTask struct {
	interval time.Duration
	onTick   func()

	mu        sync.Mutex
	cancelled bool
	done      chan struct{}
}

func (s *fakeScheduler) ScheduleRepeating(interval time.Duration, onTick func()) workers.CancelHandle {
	t := &fakeTask{interval: interval, onTick: onTick, done: make(chan struct{})}
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t
}

// fire runs one tick of every live task with the given interval.
func (s *fakeScheduler) fire(interval time.Duration) {
	for _, t := range s.live() {
		if t.interval == interval {
			t.onTick()
		}
	}
}

func (s *fakeScheduler) live() []*fakeTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*fakeTask
	for _, t := range s.tasks {
		if !t.isCancelled() {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeScheduler) all() []*fakeTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*fakeTask(nil), s.tasks...)
}

func (t *fakeTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.cancelled {
		t.cancelled = true
		close(t.done)
	}
}

func (t *fakeTask) Done() <-chan struct{} { return t.done }

func (t *fakeTask) isCancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// countingAlerter counts Alert calls.
type countingAlerter struct {
	mu       sync.Mutex
	titles   []string
	messages []string
}

func (a *countingAlerter) Alert(title, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.titles = append(a.titles, title)
	a.messages = append(a.messages, message)
}

func (a *countingAlerter) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.messages)
}
