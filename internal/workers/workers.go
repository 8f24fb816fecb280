package workers

import (
	"context"
	"sync"
	"time"
)

// Workers owns every background goroutine of the widget. It implements
// [Scheduler] and tracks long-running [Worker]s so StopAll can shut
// everything down on exit.
type Workers struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	tasks map[*task]struct{}
	wg    sync.WaitGroup
}

// New creates a Workers bound to ctx. Cancelling ctx stops every task and
// worker.
func New(ctx context.Context) *Workers {
	ctx, cancel := context.WithCancel(ctx)
	return &Workers{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[*task]struct{}),
	}
}

// ScheduleRepeating implements [Scheduler]. A non-positive interval is
// treated as one second.
func (w *Workers) ScheduleRepeating(interval time.Duration, onTick func()) CancelHandle {
	if interval <= 0 {
		interval = time.Second
	}

	ctx, cancel := context.WithCancel(w.ctx)
	t := &task{cancel: cancel, done: make(chan struct{})}

	w.mu.Lock()
	w.tasks[t] = struct{}{}
	w.mu.Unlock()

	go func() {
		defer func() {
			w.mu.Lock()
			delete(w.tasks, t)
			w.mu.Unlock()
			close(t.done)
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !t.fire(onTick) {
					return
				}
			}
		}
	}()

	return t
}

// Start runs worker on its own goroutine until StopAll.
func (w *Workers) Start(worker Worker) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		worker.Run(w.ctx)
	}()
}

// Active returns the number of repeating tasks still running.
func (w *Workers) Active() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.tasks)
}

// StopAll cancels every task and worker and waits for their goroutines to
// exit. It must not be called from inside a task.
func (w *Workers) StopAll() {
	w.mu.Lock()
	tasks := make([]*task, 0, len(w.tasks))
	for t := range w.tasks {
		tasks = append(tasks, t)
	}
	w.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
	w.cancel()

	for _, t := range tasks {
		<-t.done
	}
	w.wg.Wait()
}
