package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/document"
	"github.com/MKhiriev/go-desk-widget/models"
)

const (
	exportTitle     = "Notes Export"
	exportRule      = 50
	exportStampTime = "2006-01-02 15:04:05"
	csvHeader       = "Title,Created,Updated,Content"
	csvTimeLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// notesExporter renders an ordered note set into the export formats. The
// output depends only on the notes, so rendering an unchanged set twice
// yields identical bytes.
type notesExporter struct {
	documents document.Generator
	loc       *time.Location
}

func newNotesExporter(documents document.Generator, loc *time.Location) *notesExporter {
	if loc == nil {
		loc = time.Local
	}
	return &notesExporter{documents: documents, loc: loc}
}

func (e *notesExporter) render(ctx context.Context, format models.ExportFormat, notes []models.Note) (*models.Artifact, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case models.FormatText:
		data = e.text(notes)
	case models.FormatMarkdown:
		data = e.markdown(notes)
	case models.FormatJSON:
		data, err = e.json(notes)
	case models.FormatCSV:
		data = e.csv(notes)
	case models.FormatDocument:
		return e.document(ctx, notes)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", ErrValidation, format)
	}
	if err != nil {
		return nil, err
	}

	return &models.Artifact{
		Extension: string(format),
		MIMEType:  format.MIMEType(),
		Data:      data,
	}, nil
}

// stamp is the export date: the newest UpdatedAt of the set.
func (e *notesExporter) stamp(notes []models.Note) string {
	var latest time.Time
	for _, n := range notes {
		if n.UpdatedAt.After(latest) {
			latest = n.UpdatedAt
		}
	}
	return latest.In(e.loc).Format(exportStampTime)
}

func (e *notesExporter) created(n models.Note) string {
	return n.CreatedAt.In(e.loc).Format(exportStampTime)
}

func (e *notesExporter) text(notes []models.Note) []byte {
	var b strings.Builder
	rule := strings.Repeat("=", exportRule)

	b.WriteString("NOTES EXPORT\n")
	fmt.Fprintf(&b, "Exported on %s\n", e.stamp(notes))
	b.WriteString(rule + "\n\n")

	for i, n := range notes {
		b.WriteString(n.Title + "\n")
		b.WriteString(strings.Repeat("-", len([]rune(n.Title))) + "\n")
		fmt.Fprintf(&b, "Created: %s\n\n", e.created(n))
		b.WriteString(n.Content + "\n\n")
		if i < len(notes)-1 {
			b.WriteString(rule + "\n\n")
		}
	}

	return []byte(b.String())
}

func (e *notesExporter) markdown(notes []models.Note) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", exportTitle)
	fmt.Fprintf(&b, "*Exported on %s*\n\n", e.stamp(notes))
	b.WriteString("---\n\n")

	for i, n := range notes {
		fmt.Fprintf(&b, "## %s\n\n", n.Title)
		fmt.Fprintf(&b, "*Created: %s*\n\n", e.created(n))
		b.WriteString(n.Content + "\n\n")
		if i < len(notes)-1 {
			b.WriteString("---\n\n")
		}
	}

	return []byte(b.String())
}

func (e *notesExporter) json(notes []models.Note) ([]byte, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling notes: %w", err)
	}
	return data, nil
}

func (e *notesExporter) csv(notes []models.Note) []byte {
	var b bytes.Buffer

	b.WriteString(csvHeader + "\n")
	for _, n := range notes {
		fields := []string{
			n.Title,
			n.CreatedAt.UTC().Format(csvTimeLayout),
			n.UpdatedAt.UTC().Format(csvTimeLayout),
			n.Content,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvQuote(f))
		}
		b.WriteByte('\n')
	}

	return b.Bytes()
}

// csvQuote always quotes; encoding/csv only quotes when it must.
func csvQuote(field string) string {
	field = strings.ReplaceAll(field, "\r\n", "\n")
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func (e *notesExporter) document(ctx context.Context, notes []models.Note) (*models.Artifact, error) {
	doc := document.Document{
		Title:      exportTitle,
		ExportedOn: e.stamp(notes),
		Entries:    make([]document.Entry, 0, len(notes)),
	}
	for _, n := range notes {
		doc.Entries = append(doc.Entries, document.Entry{
			Title:   n.Title,
			Created: e.created(n),
			Content: n.Content,
		})
	}

	artifact, err := e.documents.Generate(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, err)
	}
	return artifact, nil
}
