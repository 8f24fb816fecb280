// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-desk-widget/internal/adapter"
	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/document"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/store"
	"github.com/MKhiriev/go-desk-widget/internal/validators"
	"github.com/MKhiriev/go-desk-widget/internal/workers"
)

// WidgetServices is the application context: one instance of every feature
// service, shared by the terminal UI and the preview server.
type WidgetServices struct {
	Notices  NoticeBoard
	Timer    TimerService
	Recorder RecorderService
	Notes    NoteService
}

// Dependencies are the collaborators NewWidgetServices wires together.
type Dependencies struct {
	Storages   *store.Storages
	Scheduler  workers.Scheduler
	Capturer   audio.Capturer
	Player     audio.Player
	Downloader adapter.Downloader
	Alerter    adapter.Alerter
	Documents  document.Generator
	IDs        IDGenerator
	Validator  validators.Validator
}

// NewWidgetServices builds the services for cfg.
func NewWidgetServices(cfg *config.WidgetConfig, deps Dependencies, logger *logger.Logger) (*WidgetServices, error) {
	if deps.Storages == nil || deps.Storages.NoteRepository == nil {
		return nil, errors.New("nil note repository")
	}
	if deps.Scheduler == nil {
		return nil, errors.New("nil scheduler")
	}

	notices := NewNoticeBoard(cfg.App.NoticeTTL, logger.WithComponent("notices"))

	return &WidgetServices{
		Notices: notices,
		Timer: NewTimerService(
			cfg.Timer.TotalSeconds,
			deps.Scheduler,
			deps.Alerter,
			notices,
			logger.WithComponent("timer"),
		),
		Recorder: NewRecorderService(
			cfg.Recorder,
			cfg.App.Location,
			deps.Capturer,
			deps.Player,
			deps.Scheduler,
			deps.Downloader,
			deps.Validator,
			notices,
			logger.WithComponent("recorder"),
		),
		Notes: NewNoteService(
			deps.Storages.NoteRepository,
			deps.IDs,
			deps.Validator,
			deps.Downloader,
			deps.Documents,
			notices,
			cfg.App.Location,
			logger.WithComponent("notes"),
		),
	}, nil
}
