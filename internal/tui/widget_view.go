package tui

import (
	"fmt"
	"strings"
)

func (m widgetModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body, hotKeys string
	switch m.pane {
	case paneTimer:
		body, hotKeys = m.timerView()
	case paneRecorder:
		body, hotKeys = m.recorderView()
	default:
		body, hotKeys = m.notesView()
	}

	page := renderPage(m.tabsView(), body, hotKeys)

	notice, ok := m.services.Notices.Latest()
	if toast := renderNotice(notice, ok, m.lineWidth()); toast != "" {
		page += "\n\n" + toast
	}
	if m.status != "" {
		page += "\n" + helpStyle.Render(fitText(m.status, m.lineWidth()))
	}

	if m.showExport {
		page += "\n\n" + m.export.View()
	}
	if m.showConfirm {
		page += "\n\n" + m.confirm.View()
	}
	if m.showError {
		page += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(page)
}

func (m widgetModel) tabsView() string {
	tabs := make([]string, 0, paneCount)
	for p := pane(0); p < paneCount; p++ {
		if p == m.pane {
			tabs = append(tabs, activeTabStyle.Render(paneTitles[p]))
		} else {
			tabs = append(tabs, tabStyle.Render(paneTitles[p]))
		}
	}
	return strings.Join(tabs, "")
}

func (m widgetModel) timerView() (string, string) {
	snap := m.services.Timer.Snapshot()

	var b strings.Builder
	b.WriteString(clockStyle.Render(snap.Clock()))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(snap.Progress() / 100))
	b.WriteString("\n\n")
	switch {
	case snap.Running:
		b.WriteString("Running")
	case snap.Completed:
		b.WriteString("Completed")
	case snap.Remaining < snap.Total:
		b.WriteString("Paused")
	default:
		b.WriteString("Ready")
	}

	action := "start"
	if snap.Running {
		action = "pause"
	}
	return b.String(), "space: " + action + "    r: reset"
}

func (m widgetModel) recorderView() (string, string) {
	snap := m.services.Recorder.Snapshot()

	var b strings.Builder
	if snap.Recording {
		b.WriteString(recordingStyle.Render("● REC "))
	} else {
		b.WriteString(helpStyle.Render("○ "))
	}
	b.WriteString(clockStyle.Render(snap.Clock()))
	if snap.HasRecording {
		fmt.Fprintf(&b, "    %d KB", snap.SizeKB)
	}
	b.WriteString("\n\n")

	if wave := renderWaveform(snap.Frame); wave != "" {
		b.WriteString(waveStyle.Render(wave))
	}

	hotKeys := "space: record"
	if snap.Recording {
		hotKeys = "space: stop"
	} else if snap.HasRecording {
		hotKeys += "    p: play    x: export"
	}
	return b.String(), hotKeys
}

func (m widgetModel) notesView() (string, string) {
	if m.editing {
		return m.editorView()
	}

	notes := m.services.Notes.List()
	if len(notes) == 0 {
		return helpStyle.Render("No notes yet."), "n: new    x: export"
	}

	width := m.lineWidth()
	var b strings.Builder
	fmt.Fprintf(&b, "%d notes\n\n", len(notes))
	for i, n := range notes {
		prefix := "  "
		line := fmt.Sprintf("%s  %s", m.services.Notes.FormatTime(n.UpdatedAt), n.Title)
		if i == m.cursor {
			prefix = "> "
			line = selectedStyle.Render(fitText(line, width-2))
		} else {
			line = fitText(line, width-2)
		}
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
		if i == m.cursor {
			if preview := firstLine(n.Content); preview != "" {
				b.WriteString("    ")
				b.WriteString(helpStyle.Render(fitText(preview, width-4)))
				b.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(b.String(), "\n"),
		"n: new    e: edit    d: delete    D: clear all    c: copy    x: export"
}

func (m widgetModel) editorView() (string, string) {
	heading := "New note"
	if draft, ok := m.services.Notes.Draft(); ok && !draft.IsNew() {
		heading = "Edit note"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.content.View())

	return b.String(), "ctrl+s: save    tab: switch field    ctrl+x: export    esc: discard"
}

func (m widgetModel) lineWidth() int {
	if m.width <= 0 {
		return 66
	}
	return max(20, m.width-4)
}
