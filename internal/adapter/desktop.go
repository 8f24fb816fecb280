package adapter

import (
	"context"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

// Ringer plays a sound and blocks until it has finished.
type Ringer interface {
	Ring(ctx context.Context) error
}

// DesktopAlerter plays the completion cue and raises a desktop notification.
// When the cue cannot be played the system beep is used instead.
type DesktopAlerter struct {
	ctx    context.Context
	ringer Ringer
	silent bool

	notify func(title, message string) error
	beep   func() error

	logger *logger.Logger
	wg     sync.WaitGroup
}

// NewDesktopAlerter returns an Alerter bound to ctx. ringer may be nil when no
// output device is available; silent suppresses every sound.
func NewDesktopAlerter(ctx context.Context, ringer Ringer, silent bool, logger *logger.Logger) *DesktopAlerter {
	return &DesktopAlerter{
		ctx:    ctx,
		ringer: ringer,
		silent: silent,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		logger: logger,
	}
}

func (a *DesktopAlerter) Alert(title, message string) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		if !a.silent {
			a.sound()
		}
		if err := a.notify(title, message); err != nil {
			a.logger.Err(err).Str("func", "DesktopAlerter.Alert").Msg("error sending desktop notification")
		}
	}()
}

func (a *DesktopAlerter) sound() {
	if a.ringer != nil {
		err := a.ringer.Ring(a.ctx)
		if err == nil {
			return
		}
		a.logger.Err(err).Str("func", "DesktopAlerter.sound").Msg("error playing completion cue, falling back to system beep")
	}

	if err := a.beep(); err != nil {
		a.logger.Err(err).Str("func", "DesktopAlerter.sound").Msg("error playing system beep")
	}
}

// Wait blocks until every started alert has finished.
func (a *DesktopAlerter) Wait() {
	a.wg.Wait()
}
