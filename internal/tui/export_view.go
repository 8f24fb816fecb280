package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/MKhiriev/go-desk-widget/internal/service"
	"github.com/MKhiriev/go-desk-widget/models"
)

type exportTarget int

const (
	exportNotes exportTarget = iota
	exportRecording
)

// recordingFormats are the labels offered for a recording. Only wav matches
// the payload.
var recordingFormats = []string{"wav", "mp3", "ogg", "webm"}

const previewLines = 14

type exportModel struct {
	target         exportTarget
	name           textinput.Model
	formats        []string
	formatIdx      int
	includeUnsaved bool
	preview        string
}

func newExportName(placeholder string) textinput.Model {
	name := textinput.New()
	name.Placeholder = placeholder
	name.CharLimit = 120
	name.Width = 40
	name.Focus()
	return name
}

func newNotesExport(notes service.NoteService, includeUnsaved bool) exportModel {
	formats := make([]string, len(models.ExportFormats))
	for i, f := range models.ExportFormats {
		formats[i] = string(f)
	}
	return exportModel{
		target:         exportNotes,
		name:           newExportName(notes.DefaultExportName(models.ExportFormats[0])),
		formats:        formats,
		includeUnsaved: includeUnsaved,
	}
}

func newRecordingExport(defaultName string) exportModel {
	return exportModel{
		target:  exportRecording,
		name:    newExportName(defaultName),
		formats: recordingFormats,
	}
}

func (m exportModel) format() string {
	return m.formats[m.formatIdx]
}

func (m exportModel) notesFormat() models.ExportFormat {
	return models.ExportFormat(m.format())
}

func (m exportModel) options() models.ExportOptions {
	return models.ExportOptions{IncludeUnsaved: m.includeUnsaved}
}

func (m *exportModel) cycleFormat(step int) {
	n := len(m.formats)
	m.formatIdx = ((m.formatIdx+step)%n + n) % n
}

func (m exportModel) View() string {
	var b strings.Builder

	if m.target == exportNotes {
		b.WriteString(titleStyle.Render("Export notes"))
	} else {
		b.WriteString(titleStyle.Render("Export recording"))
	}
	b.WriteString("\n\n")
	b.WriteString("File name: ")
	b.WriteString(m.name.View())
	b.WriteString("\n")

	b.WriteString("Format:    ")
	for i, f := range m.formats {
		if i == m.formatIdx {
			b.WriteString(selectedStyle.Render("[" + f + "]"))
		} else {
			b.WriteString(helpStyle.Render(" " + f + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if m.target == exportNotes {
		mark := "[ ]"
		if m.includeUnsaved {
			mark = "[x]"
		}
		b.WriteString(mark + " include unsaved note\n")
		if m.preview != "" {
			b.WriteString("\n")
			b.WriteString(clipLines(m.preview, previewLines))
			b.WriteString("\n")
		}
	} else if m.format() != "wav" {
		b.WriteString(helpStyle.Render("The file will contain WAV audio."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := "enter: export    ↑/↓: format    esc: cancel"
	if m.target == exportNotes {
		hints += "    ctrl+u: unsaved"
	}
	b.WriteString(helpStyle.Render(hints))

	return overlayBoxStyle.Render(b.String())
}

func clipLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n], "\n") + "\n" + helpStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-n))
}

func cmdRenderPreview(ctx context.Context, notes service.NoteService, format models.ExportFormat, opts models.ExportOptions, width int) tea.Cmd {
	return func() tea.Msg {
		artifact, err := notes.Render(ctx, format, opts)
		if err != nil {
			return previewMsg{err: err}
		}
		content, err := previewText(format, artifact, width)
		return previewMsg{content: content, err: err}
	}
}

// previewText renders markdown through glamour and shows binary documents
// by size only.
func previewText(format models.ExportFormat, artifact *models.Artifact, width int) (string, error) {
	switch format {
	case models.FormatDocument:
		return fmt.Sprintf("%s document, %d bytes", strings.ToUpper(artifact.Extension), len(artifact.Data)), nil
	case models.FormatMarkdown:
		if width <= 0 {
			width = 60
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("error creating markdown renderer: %w", err)
		}
		out, err := r.Render(string(artifact.Data))
		if err != nil {
			return "", fmt.Errorf("error rendering markdown: %w", err)
		}
		return strings.Trim(out, "\n"), nil
	default:
		return string(artifact.Data), nil
	}
}
