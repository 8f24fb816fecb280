package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

type pane int

const (
	paneTimer pane = iota
	paneRecorder
	paneNotes
	paneCount
)

var paneTitles = [paneCount]string{"Timer", "Recorder", "Notes"}

type widgetModel struct {
	ctx       context.Context
	services  *service.WidgetServices
	buildInfo models.AppBuildInfo
	confirmer service.Confirmer
	logger    *logger.Logger

	width  int
	height int
	pane   pane

	progress progress.Model

	cursor       int
	editing      bool
	title        textinput.Model
	content      textarea.Model
	focusContent bool

	showExport bool
	export     exportModel

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel
	showInfo     bool

	status string
}

func newWidgetModel(ctx context.Context, services *service.WidgetServices, buildInfo models.AppBuildInfo, confirmer service.Confirmer, log *logger.Logger) widgetModel {
	title := textinput.New()
	title.Placeholder = "Note title"
	title.CharLimit = 200
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(8)

	return widgetModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		confirmer: confirmer,
		logger:    log,
		progress:  progress.New(progress.WithSolidFill(string(accentColor)), progress.WithoutPercentage()),
		title:     title,
		content:   content,
	}
}

func (m widgetModel) Init() tea.Cmd {
	return cmdRefresh()
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = max(10, min(60, msg.Width-8))
		m.content.SetWidth(max(20, msg.Width-8))
		return m, nil

	case refreshMsg:
		return m, cmdRefresh()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case confirmRequestMsg:
		if m.showConfirm {
			m.confirm.answer(false)
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: msg.message, reply: msg.reply}
		return m, nil

	case recordingToggledMsg:
		m.logResult("recordingToggled", msg.err)
		return m, nil

	case playbackDoneMsg:
		m.logResult("playbackDone", msg.err)
		return m, nil

	case noteSavedMsg:
		if msg.err != nil {
			m.logResult("noteSaved", msg.err)
			return m, nil
		}
		m.closeEditor()
		m.selectNote(msg.note.ID)
		return m, nil

	case notesChangedMsg:
		m.logResult("notesChanged", msg.err)
		if _, open := m.services.Notes.Draft(); m.editing && !open {
			m.closeEditor()
		}
		m.clampCursor()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.logResult("exportDone", msg.err)
			return m, nil
		}
		m.showExport = false
		m.status = "Saved to " + msg.result.Path
		return m, cmdClearStatus()

	case previewMsg:
		if !m.showExport || m.export.target != exportNotes {
			return m, nil
		}
		if msg.err != nil {
			m.export.preview = helpStyle.Render("Preview unavailable.")
			return m, nil
		}
		m.export.preview = msg.content
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeClipboardError(msg.err))
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m widgetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm.answer(true)
			m.showConfirm = false
		case key.Matches(msg, keys.no):
			m.confirm.answer(false)
			m.showConfirm = false
		}
		return m, nil
	}
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}
	if m.showExport {
		return m.updateExport(msg)
	}
	if m.editing {
		return m.updateEditor(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		m.pane = (m.pane + 1) % paneCount
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.pane = (m.pane + paneCount - 1) % paneCount
		return m, nil
	}

	switch m.pane {
	case paneTimer:
		return m.updateTimer(msg)
	case paneRecorder:
		return m.updateRecorder(msg)
	default:
		return m.updateNotes(msg)
	}
}

func (m widgetModel) quit() (tea.Model, tea.Cmd) {
	if m.showConfirm {
		m.confirm.answer(false)
		m.showConfirm = false
	}
	return m, tea.Quit
}

func (m widgetModel) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := m.services.Timer
	switch {
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
		if timer.Snapshot().Running {
			timer.Pause()
		} else {
			timer.Start()
		}
	case key.Matches(msg, keys.reset):
		timer.Reset()
	}
	return m, nil
}

func (m widgetModel) updateRecorder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.services.Recorder.Snapshot()
	switch {
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
		return m, m.cmdToggleRecording(snap.Recording)
	case key.Matches(msg, keys.play):
		if snap.Recording {
			return m, nil
		}
		return m, m.cmdPlay()
	case key.Matches(msg, keys.export):
		if !snap.HasRecording {
			// the service reports the missing recording
			return m, m.cmdExportRecording("", "")
		}
		m.export = newRecordingExport(m.services.Recorder.DefaultRecordingName())
		m.showExport = true
		return m, textinput.Blink
	}
	return m, nil
}

func (m widgetModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.services.Notes.List()
	m.clampCursorTo(len(notes))

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(notes)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newNote):
		m.services.Notes.Create()
		return m.openEditor("", "")
	case key.Matches(msg, keys.edit):
		if len(notes) == 0 {
			return m, nil
		}
		note := notes[m.cursor]
		m.services.Notes.Edit(note.ID)
		return m.openEditor(note.Title, note.Content)
	case key.Matches(msg, keys.delete):
		if len(notes) == 0 {
			return m, nil
		}
		return m, m.cmdDeleteNote(notes[m.cursor].ID)
	case key.Matches(msg, keys.clearAll):
		return m, m.cmdClearNotes()
	case key.Matches(msg, keys.copy):
		if len(notes) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard(notes[m.cursor].Content)
	case key.Matches(msg, keys.export):
		return m.openNotesExport()
	}
	return m, nil
}

func (m widgetModel) openEditor(title, content string) (tea.Model, tea.Cmd) {
	m.editing = true
	m.title.SetValue(title)
	m.content.SetValue(content)
	m.focusContent = false
	m.content.Blur()
	return m, m.title.Focus()
}

func (m *widgetModel) closeEditor() {
	m.editing = false
	m.title.Blur()
	m.content.Blur()
	m.title.Reset()
	m.content.Reset()
}

func (m widgetModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.services.Notes.CloseDraft()
		m.closeEditor()
		return m, nil
	case key.Matches(msg, keys.save):
		return m, m.cmdSaveNote(m.title.Value(), m.content.Value())
	case key.Matches(msg, keys.draftOut):
		return m.openNotesExport()
	case key.Matches(msg, keys.tab):
		m.focusContent = !m.focusContent
		if m.focusContent {
			m.title.Blur()
			return m, m.content.Focus()
		}
		m.content.Blur()
		return m, m.title.Focus()
	}

	var cmd tea.Cmd
	if m.focusContent {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.title, cmd = m.title.Update(msg)
	}
	m.services.Notes.UpdateDraft(m.title.Value(), m.content.Value())
	return m, cmd
}

func (m widgetModel) openNotesExport() (tea.Model, tea.Cmd) {
	draft, open := m.services.Notes.Draft()
	hasDraft := open && !draft.IsBlank()
	if m.services.Notes.Count() == 0 && !hasDraft {
		// the service reports the empty collection
		return m, m.cmdExportNotes("", models.FormatText, models.ExportOptions{})
	}

	m.export = newNotesExport(m.services.Notes, hasDraft)
	m.showExport = true
	return m, tea.Batch(textinput.Blink, m.cmdPreview())
}

func (m widgetModel) updateExport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showExport = false
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.export.target == exportRecording {
			return m, m.cmdExportRecording(m.export.name.Value(), m.export.format())
		}
		return m, m.cmdExportNotes(m.export.name.Value(), m.export.notesFormat(), m.export.options())
	case key.Matches(msg, keys.prevFormat), key.Matches(msg, keys.nextFormat):
		step := 1
		if key.Matches(msg, keys.prevFormat) {
			step = -1
		}
		m.export.cycleFormat(step)
		if m.export.target == exportRecording {
			return m, nil
		}
		m.export.name.Placeholder = m.services.Notes.DefaultExportName(m.export.notesFormat())
		m.export.preview = ""
		return m, m.cmdPreview()
	case key.Matches(msg, keys.unsaved):
		if m.export.target != exportNotes {
			return m, nil
		}
		m.export.includeUnsaved = !m.export.includeUnsaved
		return m, m.cmdPreview()
	}

	var cmd tea.Cmd
	m.export.name, cmd = m.export.name.Update(msg)
	return m, cmd
}

func (m *widgetModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// logResult records a failed command. The service has already published a
// notice for it.
func (m widgetModel) logResult(op string, err error) {
	if err == nil {
		return
	}
	m.logger.Debug().Err(err).Str("func", "widgetModel.Update").Str("op", op).Msg("command failed")
}

func (m *widgetModel) selectNote(id string) {
	for i, n := range m.services.Notes.List() {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *widgetModel) clampCursor() {
	m.clampCursorTo(m.services.Notes.Count())
}

func (m *widgetModel) clampCursorTo(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m widgetModel) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(20, min(80, m.width-12))
}
