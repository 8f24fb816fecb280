package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-desk-widget/models"
)

// Field names accepted by NoteValidator.
const (
	// FieldContent requires a non-blank title or content.
	FieldContent = "content"

	// FieldNoteID requires a non-empty id.
	FieldNoteID = "note_id"

	// FieldTimestamps requires a set CreatedAt no later than UpdatedAt.
	FieldTimestamps = "timestamps"

	// FieldFormat requires one of models.ExportFormats.
	FieldFormat = "format"

	// FieldFileName rejects names that would leave the export directory.
	FieldFileName = "file_name"
)

// NoteValidator validates drafts, notes and export requests.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		return v.validateDraft(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(_ context.Context, draft models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if draft.IsBlank() {
				return ErrEmptyNote
			}
		case FieldNoteID:
			if strings.TrimSpace(draft.NoteID) == "" {
				return ErrInvalidNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldTimestamps:
			if note.CreatedAt.IsZero() || note.UpdatedAt.Before(note.CreatedAt) {
				return ErrInvalidTimestamps
			}
		case FieldContent:
			if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Content) == "" {
				return ErrEmptyNote
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateExportRequest(_ context.Context, request models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormat, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFormat:
			if !slices.Contains(models.ExportFormats, request.Format) {
				return ErrInvalidFormat
			}
		case FieldFileName:
			if !isSafeFileName(request.FileName) {
				return ErrInvalidFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isSafeFileName reports whether name stays inside the export directory.
// An empty name is safe; the caller substitutes the default.
func isSafeFileName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}
