package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/mock"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

type fixture struct {
	notices  *mock.MockNoticeBoard
	timer    *mock.MockTimerService
	recorder *mock.MockRecorderService
	notes    *mock.MockNoteService
	model    widgetModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		notices:  mock.NewMockNoticeBoard(ctrl),
		timer:    mock.NewMockTimerService(ctrl),
		recorder: mock.NewMockRecorderService(ctrl),
		notes:    mock.NewMockNoteService(ctrl),
	}
	services := &service.WidgetServices{
		Notices:  f.notices,
		Timer:    f.timer,
		Recorder: f.recorder,
		Notes:    f.notes,
	}
	f.model = newWidgetModel(context.Background(), services, models.NewAppBuildInfo("1.0.0", "", ""), &promptConfirmer{}, logger.Nop())
	return f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m widgetModel, msg tea.Msg) (widgetModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(widgetModel)
	require.True(t, ok)
	return wm, cmd
}

// ── Navigation ───────────────────────────────────────────────────────────────

func TestWidgetModel_TabCyclesPanes(t *testing.T) {
	f := newFixture(t)
	m := f.model
	assert.Equal(t, paneTimer, m.pane)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneRecorder, m.pane)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneNotes, m.pane)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneTimer, m.pane)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, paneNotes, m.pane)
}

func TestWidgetModel_InfoWindow(t *testing.T) {
	f := newFixture(t)
	m, _ := update(t, f.model, runes("?"))
	require.True(t, m.showInfo)
	assert.Contains(t, m.View(), "Version: 1.0.0")
	assert.Contains(t, m.View(), "Date: N/A")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)
}

func TestWidgetModel_Quit(t *testing.T) {
	f := newFixture(t)
	_, cmd := update(t, f.model, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── Timer ────────────────────────────────────────────────────────────────────

func TestWidgetModel_TimerKeys(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.timer.EXPECT().Snapshot().Return(models.TimerSnapshot{Remaining: 300, Total: 300}),
		f.timer.EXPECT().Start(),
		f.timer.EXPECT().Snapshot().Return(models.TimerSnapshot{Remaining: 299, Total: 300, Running: true}),
		f.timer.EXPECT().Pause(),
		f.timer.EXPECT().Reset(),
	)

	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	update(t, m, runes("r"))
}

func TestWidgetModel_TimerView(t *testing.T) {
	f := newFixture(t)
	f.timer.EXPECT().Snapshot().Return(models.TimerSnapshot{Remaining: 150, Total: 300})
	f.notices.EXPECT().Latest().Return(models.Notice{Message: "Timer completed! 5 minutes have passed.", Severity: models.SeveritySuccess}, true)

	view := f.model.View()
	assert.Contains(t, view, "02:30")
	assert.Contains(t, view, "Paused")
	assert.Contains(t, view, "Timer completed! 5 minutes have passed.")
}

// ── Recorder ─────────────────────────────────────────────────────────────────

func TestWidgetModel_RecordToggle(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneRecorder

	f.recorder.EXPECT().Snapshot().Return(models.RecorderSnapshot{})
	f.recorder.EXPECT().StartRecording(gomock.Any()).Return(nil)

	_, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)
	assert.Equal(t, recordingToggledMsg{}, cmd())

	f.recorder.EXPECT().Snapshot().Return(models.RecorderSnapshot{Recording: true})
	f.recorder.EXPECT().StopRecording(gomock.Any()).Return(nil)

	_, cmd = update(t, f.model, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)
	assert.Equal(t, recordingToggledMsg{}, cmd())
}

func TestWidgetModel_ExportWithoutRecording(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneRecorder

	f.recorder.EXPECT().Snapshot().Return(models.RecorderSnapshot{})
	f.recorder.EXPECT().ExportAs(gomock.Any(), "", "").Return(models.ExportResult{}, service.ErrNoRecording)

	m, cmd := update(t, f.model, runes("x"))
	assert.False(t, m.showExport)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.False(t, m.showError)
}

func TestWidgetModel_ExportRecording(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneRecorder

	f.recorder.EXPECT().Snapshot().Return(models.RecorderSnapshot{HasRecording: true})
	f.recorder.EXPECT().DefaultRecordingName().Return("recording_2026-03-01_10-00-00")

	m, _ := update(t, f.model, runes("x"))
	require.True(t, m.showExport)
	assert.Equal(t, exportRecording, m.export.target)
	assert.Equal(t, "recording_2026-03-01_10-00-00", m.export.name.Placeholder)

	m, _ = update(t, m, runes("take"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "mp3", m.export.format())

	result := models.ExportResult{FileName: "take.mp3", Path: "/tmp/take.mp3"}
	f.recorder.EXPECT().ExportAs(gomock.Any(), "take", "mp3").Return(result, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.False(t, m.showExport)
	assert.Equal(t, "Saved to /tmp/take.mp3", m.status)
}

func TestWidgetModel_RecorderView(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneRecorder

	frame := models.Frame{Width: 2, Height: 4, Pixels: []string{
		audio.BarColor, audio.BackgroundColor,
		audio.BackgroundColor, audio.BackgroundColor,
		audio.BackgroundColor, audio.BackgroundColor,
		audio.BackgroundColor, audio.BarColor,
	}}
	f.recorder.EXPECT().Snapshot().Return(models.RecorderSnapshot{Recording: true, Elapsed: 65 * time.Second, Frame: frame})
	f.notices.EXPECT().Latest().Return(models.Notice{}, false)

	view := f.model.View()
	assert.Contains(t, view, "REC")
	assert.Contains(t, view, "01:05")
	assert.Contains(t, view, string(rune(0x2800|0x01|0x80)))
	assert.Contains(t, view, "space: stop")
}

// ── Notes ────────────────────────────────────────────────────────────────────

var sampleNotes = []models.Note{
	{ID: "a", Title: "Groceries", Content: "milk\neggs"},
	{ID: "b", Title: "Plan", Content: "ship it"},
}

func TestWidgetModel_CreateAndSave(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(nil)
	f.notes.EXPECT().Create()

	m, _ := update(t, f.model, runes("n"))
	require.True(t, m.editing)

	f.notes.EXPECT().UpdateDraft("T", "")
	m, _ = update(t, m, runes("T"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.focusContent)
	f.notes.EXPECT().UpdateDraft("T", "x")
	m, _ = update(t, m, runes("x"))

	saved := models.Note{ID: "new", Title: "T", Content: "x"}
	f.notes.EXPECT().Save(gomock.Any(), "T", "x").Return(saved, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, noteSavedMsg{note: saved}, msg)

	f.notes.EXPECT().List().Return([]models.Note{saved, sampleNotes[0]})
	m, _ = update(t, m, msg)
	assert.False(t, m.editing)
	assert.Zero(t, m.cursor)
}

func TestWidgetModel_SaveFailureKeepsEditor(t *testing.T) {
	f := newFixture(t)
	f.model.editing = true

	m, _ := update(t, f.model, noteSavedMsg{err: service.ErrValidation})
	assert.True(t, m.editing)
}

func TestWidgetModel_EditAndDiscard(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(sampleNotes)
	f.notes.EXPECT().Edit("b")

	m, _ := update(t, f.model, runes("j"))
	assert.Equal(t, 1, m.cursor)

	f.notes.EXPECT().List().Return(sampleNotes)
	m, _ = update(t, m, runes("e"))
	require.True(t, m.editing)
	assert.Equal(t, "Plan", m.title.Value())
	assert.Equal(t, "ship it", m.content.Value())

	f.notes.EXPECT().CloseDraft()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Empty(t, m.title.Value())
}

func TestWidgetModel_DeleteAsksThroughConfirmer(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(sampleNotes)
	f.notes.EXPECT().Delete(gomock.Any(), "a", f.model.confirmer).Return(nil)

	_, cmd := update(t, f.model, runes("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, notesChangedMsg{}, cmd())
}

func TestWidgetModel_ClearAllNothingToClear(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(nil)
	f.notes.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(service.ErrNothingToClear)

	m, cmd := update(t, f.model, runes("D"))
	require.NotNil(t, cmd)

	f.notes.EXPECT().Draft().Return(models.Draft{}, false)
	f.notes.EXPECT().Count().Return(0)
	m, _ = update(t, m, cmd())
	assert.False(t, m.showError)
	assert.Zero(t, m.cursor)
}

func TestWidgetModel_DeletingEditedNoteClosesEditor(t *testing.T) {
	f := newFixture(t)
	f.model.editing = true

	f.notes.EXPECT().Draft().Return(models.Draft{}, false)
	f.notes.EXPECT().Count().Return(1)

	m, _ := update(t, f.model, notesChangedMsg{})
	assert.False(t, m.editing)
}

func TestWidgetModel_ExportEmptyCollection(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(nil)
	f.notes.EXPECT().Draft().Return(models.Draft{}, false)
	f.notes.EXPECT().Count().Return(0)
	f.notes.EXPECT().Export(gomock.Any(), "", models.FormatText, models.ExportOptions{}).
		Return(models.ExportResult{}, service.ErrNothingToExport)

	m, cmd := update(t, f.model, runes("x"))
	assert.False(t, m.showExport)
	require.NotNil(t, cmd)
	assert.ErrorIs(t, cmd().(exportDoneMsg).err, service.ErrNothingToExport)
}

func TestWidgetModel_ExportDialog(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes

	f.notes.EXPECT().List().Return(sampleNotes)
	f.notes.EXPECT().Draft().Return(models.Draft{}, false)
	f.notes.EXPECT().Count().Return(2)
	f.notes.EXPECT().DefaultExportName(models.FormatText).Return("notes_2026-03-01T10-00-00")

	m, _ := update(t, f.model, runes("x"))
	require.True(t, m.showExport)
	assert.Equal(t, exportNotes, m.export.target)
	assert.False(t, m.export.includeUnsaved)
	assert.Equal(t, "notes_2026-03-01T10-00-00", m.export.name.Placeholder)

	f.notes.EXPECT().DefaultExportName(models.FormatDocument).Return("Plan")
	f.notes.EXPECT().Render(gomock.Any(), models.FormatDocument, models.ExportOptions{}).
		Return(&models.Artifact{Extension: "docx", Data: make([]byte, 10)}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, models.FormatDocument, m.export.notesFormat())
	assert.Equal(t, "Plan", m.export.name.Placeholder)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "DOCX document, 10 bytes", m.export.preview)

	f.notes.EXPECT().Export(gomock.Any(), "", models.FormatDocument, models.ExportOptions{}).
		Return(models.ExportResult{Path: "/exports/Plan.docx"}, nil)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.False(t, m.showExport)
	assert.Equal(t, "Saved to /exports/Plan.docx", m.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestWidgetModel_ExportDraftFromEditor(t *testing.T) {
	f := newFixture(t)
	f.model.editing = true

	f.notes.EXPECT().Draft().Return(models.Draft{Title: "wip"}, true)
	f.notes.EXPECT().Count().Return(0)
	f.notes.EXPECT().DefaultExportName(models.FormatText).Return("notes_x")

	m, _ := update(t, f.model, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, m.showExport)
	assert.True(t, m.export.includeUnsaved)

	f.notes.EXPECT().Render(gomock.Any(), models.FormatText, models.ExportOptions{}).
		Return(nil, service.ErrNothingToExport)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.False(t, m.export.includeUnsaved)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.export.preview, "Preview unavailable.")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showExport)
	assert.True(t, m.editing)
}

func TestWidgetModel_NotesView(t *testing.T) {
	f := newFixture(t)
	f.model.pane = paneNotes
	f.model.cursor = 0

	f.notes.EXPECT().List().Return(sampleNotes)
	f.notes.EXPECT().FormatTime(gomock.Any()).Return("2026-03-01 09:00").Times(2)
	f.notices.EXPECT().Latest().Return(models.Notice{}, false)

	view := f.model.View()
	assert.Contains(t, view, "2 notes")
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "milk")
	assert.NotContains(t, view, "eggs")
	assert.Contains(t, view, "Plan")
}

// ── Confirm ──────────────────────────────────────────────────────────────────

func TestPromptConfirmer_Answer(t *testing.T) {
	f := newFixture(t)
	requests := make(chan tea.Msg, 1)
	confirmer := &promptConfirmer{send: func(msg tea.Msg) { requests <- msg }}

	result := make(chan bool, 1)
	go func() {
		result <- confirmer.Confirm(context.Background(), "Are you sure?")
	}()

	m, _ := update(t, f.model, <-requests)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.confirm.View(), "Are you sure?")

	m, _ = update(t, m, runes("y"))
	assert.False(t, m.showConfirm)
	assert.True(t, <-result)
}

func TestPromptConfirmer_Decline(t *testing.T) {
	f := newFixture(t)
	requests := make(chan tea.Msg, 1)
	confirmer := &promptConfirmer{send: func(msg tea.Msg) { requests <- msg }}

	result := make(chan bool, 1)
	go func() {
		result <- confirmer.Confirm(context.Background(), "Delete?")
	}()

	m, _ := update(t, f.model, <-requests)
	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, <-result)
}

func TestPromptConfirmer_QuitDeclines(t *testing.T) {
	f := newFixture(t)
	reply := make(chan bool, 1)

	m, _ := update(t, f.model, confirmRequestMsg{message: "Delete?", reply: reply})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.False(t, <-reply)
}

func TestPromptConfirmer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	confirmer := &promptConfirmer{send: func(tea.Msg) {}}
	assert.False(t, confirmer.Confirm(ctx, "Delete?"))
	assert.False(t, (&promptConfirmer{}).Confirm(context.Background(), "Delete?"))
}

// ── Clipboard ────────────────────────────────────────────────────────────────

func TestWidgetModel_CopiedMessages(t *testing.T) {
	f := newFixture(t)

	m, cmd := update(t, f.model, copiedMsg{})
	assert.Equal(t, "Copied to clipboard", m.status)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, copiedMsg{err: errors.New("exec: \"xclip\": executable file not found in $PATH")})
	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.View(), "Clipboard is not available")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}
