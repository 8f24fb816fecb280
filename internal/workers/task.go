// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
)

// task is the [CancelHandle] of one repeating schedule.
type task struct {
	cancelled atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
}

// fire runs one tick unless the task was cancelled and reports whether the
// schedule should continue.
func (t *task) fire(onTick func()) bool {
	if t.cancelled.Load() {
		return false
	}
	onTick()
	return !t.cancelled.Load()
}

// Cancel never waits for a running tick: callers commonly cancel while
// holding the lock that tick is blocked on. A tick dispatched just before
// Cancel can therefore still run once, and owners must treat it as stale.
func (t *task) Cancel() {
	t.cancelled.Store(true)
	t.cancel()
}

func (t *task) Done() <-chan struct{} {
	return t.done
}
