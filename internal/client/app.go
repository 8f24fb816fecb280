package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-desk-widget/internal/adapter"
	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/document"
	"github.com/MKhiriev/go-desk-widget/internal/handler"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/server"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/internal/store"
	"github.com/MKhiriev/go-desk-widget/internal/tui"
	"github.com/MKhiriev/go-desk-widget/internal/utils"
	"github.com/MKhiriev/go-desk-widget/internal/validators"
	"github.com/MKhiriev/go-desk-widget/internal/workers"
	"github.com/MKhiriev/go-desk-widget/models"
)

// App owns one widget session: the services, the background workers and the
// terminal UI. There is no package-level state; every resource is released by
// Close.
type App struct {
	logger *logger.Logger

	workers  *workers.Workers
	storages *store.Storages
	device   *audio.PortAudio
	alerter  *adapter.DesktopAlerter
	services *service.WidgetServices
	ui       *tui.TUI
	preview  server.Server
}

// NewApp wires the widget for cfg. A missing audio backend is not fatal: the
// recorder then reports the microphone as unavailable and the timer falls
// back to the system beep.
func NewApp(ctx context.Context, cfg *config.WidgetConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	a := &App{logger: log, workers: workers.New(ctx)}

	storages, err := store.NewStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		a.workers.StopAll()
		return nil, fmt.Errorf("error creating storages: %w", err)
	}
	a.storages = storages

	var (
		capturer audio.Capturer
		player   audio.Player
		ringer   adapter.Ringer
	)
	device, err := audio.NewPortAudio(log.WithComponent("audio"))
	if err != nil {
		log.Warn().Err(err).Str("func", "client.NewApp").Msg("audio backend unavailable")
		capturer, player = audio.Unavailable{Err: err}, audio.Unavailable{Err: err}
	} else {
		a.device = device
		capturer, player = device, device
		ringer = audio.NewChime(device, cfg.Recorder.SampleRate)
	}
	a.alerter = adapter.NewDesktopAlerter(ctx, ringer, cfg.Timer.Silent, log.WithComponent("alerter"))

	services, err := service.NewWidgetServices(cfg, service.Dependencies{
		Storages:   storages,
		Scheduler:  a.workers,
		Capturer:   capturer,
		Player:     player,
		Downloader: adapter.NewFileDownloader(cfg.Storage.ExportsDir, log.WithComponent("downloader")),
		Alerter:    a.alerter,
		Documents:  document.NewDefaultChain(log.WithComponent("document")),
		IDs:        utils.NewUUIDGenerator(),
		Validator:  validators.NewNoteValidator(),
	}, log)
	if err != nil {
		a.abort()
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	a.services = services

	if a.ui, err = tui.New(services, buildInfo, log.WithComponent("tui")); err != nil {
		a.abort()
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	if cfg.Preview.Enabled() {
		handlers, err := handler.NewHandlers(services, cfg.Preview, buildInfo, log.WithComponent("preview"))
		if err != nil {
			a.abort()
			return nil, fmt.Errorf("error creating preview handlers: %w", err)
		}
		if a.preview, err = server.NewServer(handlers, cfg.Preview, log.WithComponent("preview")); err != nil {
			a.abort()
			return nil, fmt.Errorf("error creating preview server: %w", err)
		}
	}

	return a, nil
}

// Run loads the notes, starts the preview server and blocks in the terminal
// UI until the user quits or ctx is cancelled. Close is called on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.services.Notes.Load(ctx); err != nil {
		// the widget stays usable with an empty collection
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("starting without stored notes")
	}

	if a.preview != nil {
		a.workers.Start(a.preview)
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}
	return nil
}

// Close finalizes an active recording, stops every scheduled task and worker
// and releases the storage and the audio device.
func (a *App) Close() error {
	if a.services != nil {
		if err := a.services.Recorder.StopRecording(context.Background()); err != nil {
			a.logger.Err(err).Str("func", "App.Close").Msg("error stopping recorder")
		}
	}

	a.workers.StopAll()
	if a.preview != nil {
		a.preview.Shutdown()
	}
	a.alerter.Wait()

	err := a.release()
	a.logger.Info().Str("func", "App.Close").Msg("widget stopped")
	return err
}

func (a *App) abort() {
	a.workers.StopAll()
	if a.preview != nil {
		a.preview.Shutdown()
	}
	if err := a.release(); err != nil {
		a.logger.Err(err).Str("func", "App.abort").Msg("error releasing resources")
	}
}

func (a *App) release() error {
	var errs []error
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing storages: %w", err))
		}
		a.storages = nil
	}
	if a.device != nil {
		if err := a.device.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing audio device: %w", err))
		}
		a.device = nil
	}
	return errors.Join(errs...)
}
