// Package tui is the terminal front end of the widget. It only translates
// key presses into service calls and renders service snapshots; all state
// lives in the services.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

var errNoServices = errors.New("widget services are required")

type TUI struct {
	services  *service.WidgetServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.WidgetServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the widget until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	confirmer := &promptConfirmer{}
	model := newWidgetModel(ctx, t.services, t.buildInfo, confirmer, t.logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	confirmer.send = program.Send

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return err
	}
	return nil
}
