// Package workers runs the widget's background activity: repeating tasks
// such as the countdown tick or the visualization redraw, and long-running
// workers such as the preview server.
package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a long-running background job. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Scheduler schedules repeating tasks.
type Scheduler interface {
	// ScheduleRepeating calls onTick every interval on a background
	// goroutine until the returned handle is cancelled.
	ScheduleRepeating(interval time.Duration, onTick func()) CancelHandle
}

// CancelHandle stops a repeating task.
type CancelHandle interface {
	// Cancel stops the task without waiting for a running tick. At most one
	// tick that was already dispatched may still run after Cancel returns,
	// so owners pair Cancel with a generation check under their own lock.
	// Cancel is idempotent and may be called from inside onTick.
	Cancel()
	// Done is closed once the task's goroutine has exited.
	Done() <-chan struct{}
}
