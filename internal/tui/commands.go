package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-desk-widget/models"
)

const (
	refreshInterval = 100 * time.Millisecond
	statusTTL       = 2 * time.Second
)

func cmdRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m widgetModel) cmdToggleRecording(recording bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Recorder
	return func() tea.Msg {
		if recording {
			return recordingToggledMsg{err: svc.StopRecording(ctx)}
		}
		return recordingToggledMsg{err: svc.StartRecording(ctx)}
	}
}

func (m widgetModel) cmdPlay() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Recorder
	return func() tea.Msg {
		return playbackDoneMsg{err: svc.Play(ctx)}
	}
}

func (m widgetModel) cmdExportRecording(name, format string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Recorder
	return func() tea.Msg {
		result, err := svc.ExportAs(ctx, name, format)
		return exportDoneMsg{result: result, err: err}
	}
}

func (m widgetModel) cmdExportNotes(name string, format models.ExportFormat, opts models.ExportOptions) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		result, err := svc.Export(ctx, name, format, opts)
		return exportDoneMsg{result: result, err: err}
	}
}

func (m widgetModel) cmdSaveNote(title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		note, err := svc.Save(ctx, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

// cmdDeleteNote blocks on the confirmer, so it must stay inside a command.
func (m widgetModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	confirmer := m.confirmer
	return func() tea.Msg {
		return notesChangedMsg{err: svc.Delete(ctx, id, confirmer)}
	}
}

func (m widgetModel) cmdClearNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	confirmer := m.confirmer
	return func() tea.Msg {
		return notesChangedMsg{err: svc.ClearAll(ctx, confirmer)}
	}
}

func (m widgetModel) cmdPreview() tea.Cmd {
	return cmdRenderPreview(m.ctx, m.services.Notes, m.export.notesFormat(), m.export.options(), m.previewWidth())
}
