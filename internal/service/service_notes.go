package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/adapter"
	"github.com/MKhiriev/go-desk-widget/internal/app"
	"github.com/MKhiriev/go-desk-widget/internal/document"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/internal/store"
	"github.com/MKhiriev/go-desk-widget/internal/utils"
	"github.com/MKhiriev/go-desk-widget/internal/validators"
	"github.com/MKhiriev/go-desk-widget/models"
)

const (
	exportNamePrefix  = "notes_"
	exportNameLayout  = "2006-01-02T15-04-05"
	displayTimeLayout = "2006-01-02 15:04"
)

type noteService struct {
	repo       store.NoteRepository
	ids        IDGenerator
	validator  validators.Validator
	downloader adapter.Downloader
	exporter   *notesExporter
	notices    NoticeBoard
	logger     *logger.Logger
	loc        *time.Location
	now        func() time.Time

	mu    sync.Mutex
	notes []models.Note
	draft *models.Draft
	// draftAt dates the draft when it is exported as an unsaved entry.
	draftAt time.Time
}

// NewNoteService returns a note service with an empty collection; call Load
// to read the stored one.
func NewNoteService(
	repo store.NoteRepository,
	ids IDGenerator,
	validator validators.Validator,
	downloader adapter.Downloader,
	documents document.Generator,
	notices NoticeBoard,
	loc *time.Location,
	logger *logger.Logger,
) NoteService {
	if loc == nil {
		loc = time.Local
	}
	return &noteService{
		repo:       repo,
		ids:        ids,
		validator:  validator,
		downloader: downloader,
		exporter:   newNotesExporter(documents, loc),
		notices:    notices,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
		notes:      []models.Note{},
	}
}

func (s *noteService) Load(ctx context.Context) error {
	notes, err := s.repo.LoadNotes(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "noteService.Load").Msg("error loading notes")
		s.notices.Error(app.MsgStorageError)
		return fmt.Errorf("error loading notes: %w", err)
	}

	valid := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if err = s.validator.Validate(ctx, n); err != nil {
			s.logger.Warn().Err(err).Str("func", "noteService.Load").Str("note_id", n.ID).Msg("skipping invalid stored note")
			continue
		}
		valid = append(valid, n)
	}

	s.mu.Lock()
	s.notes = valid
	s.mu.Unlock()

	s.logger.Info().Str("func", "noteService.Load").Int("count", len(valid)).Msg("notes loaded")
	return nil
}

func (s *noteService) Create() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = &models.Draft{}
	s.draftAt = s.timestamp()
}

func (s *noteService) Edit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return
	}
	n := s.notes[i]
	s.draft = &models.Draft{NoteID: n.ID, Title: n.Title, Content: n.Content}
	s.draftAt = s.timestamp()
}

func (s *noteService) UpdateDraft(title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	s.draft.Title = title
	s.draft.Content = content
}

func (s *noteService) CloseDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = nil
}

func (s *noteService) Draft() (models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return models.Draft{}, false
	}
	return *s.draft, true
}

func (s *noteService) Save(ctx context.Context, title, content string) (models.Note, error) {
	draft := models.Draft{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	if err := s.validator.Validate(ctx, draft, validators.FieldContent); err != nil {
		s.notices.Error(app.MsgEmptyNote)
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if draft.Title == "" {
		draft.Title = models.DefaultNoteTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft != nil {
		draft.NoteID = s.draft.NoteID
	}

	now := s.timestamp()
	next := slices.Clone(s.notes)

	var note models.Note
	if i := s.indexLocked(draft.NoteID); i >= 0 {
		note = next[i]
		note.Title = draft.Title
		note.Content = draft.Content
		note.UpdatedAt = now
		next[i] = note
	} else {
		note = models.Note{
			ID:        s.ids.Generate(),
			Title:     draft.Title,
			Content:   draft.Content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		next = slices.Insert(next, 0, note)
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return models.Note{}, err
	}
	s.draft = nil

	s.logger.Info().Str("func", "noteService.Save").Str("note_id", note.ID).Msg("note saved")
	s.notices.Success(app.MsgNoteSaved)
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id string, confirm Confirmer) error {
	s.mu.Lock()
	exists := s.indexLocked(id) >= 0
	s.mu.Unlock()

	if !exists || !confirmed(ctx, confirm, app.MsgConfirmDelete) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(s.notes), i, i+1)
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	if s.draft != nil && s.draft.NoteID == id {
		s.draft = nil
	}

	s.logger.Info().Str("func", "noteService.Delete").Str("note_id", id).Msg("note deleted")
	s.notices.Success(app.MsgNoteDeleted)
	return nil
}

func (s *noteService) ClearAll(ctx context.Context, confirm Confirmer) error {
	if s.Count() == 0 {
		s.notices.Info(app.MsgNoNotesToClear)
		return ErrNothingToClear
	}

	if !confirmed(ctx, confirm, app.MsgConfirmClear) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, []models.Note{}); err != nil {
		return err
	}
	if s.draft != nil && !s.draft.IsNew() {
		s.draft = nil
	}

	s.logger.Info().Str("func", "noteService.ClearAll").Msg("notes cleared")
	s.notices.Success(app.MsgNotesCleared)
	return nil
}

func (s *noteService) List() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notes)
}

func (s *noteService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notes)
}

func (s *noteService) Export(ctx context.Context, fileName string, format models.ExportFormat, opts models.ExportOptions) (models.ExportResult, error) {
	req := models.ExportRequest{FileName: fileName, Format: format, Options: opts}
	if err := s.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrInvalidFileName) {
			s.notices.Error(app.MsgInvalidFileName)
		}
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	artifact, err := s.Render(ctx, format, opts)
	if err != nil {
		return models.ExportResult{}, err
	}

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		fileName = s.DefaultExportName(format)
	}
	fullName := utils.WithExtension(fileName, artifact.Extension)

	path, err := s.downloader.Save(ctx, fullName, artifact.Data)
	if err != nil {
		s.logger.Err(err).Str("func", "noteService.Export").Str("file_name", fullName).Msg("error saving export")
		s.notices.Error(app.MsgExportError)
		return models.ExportResult{}, fmt.Errorf("error saving export: %w", err)
	}

	result := models.ExportResult{
		FileName: filepath.Base(path),
		Path:     path,
		Size:     len(artifact.Data),
	}

	s.logger.Info().Str("func", "noteService.Export").Str("path", path).Str("format", string(format)).Msg("notes exported")
	s.notices.Success(fmt.Sprintf(app.MsgNotesExported, result.FileName))
	return result, nil
}

func (s *noteService) Render(ctx context.Context, format models.ExportFormat, opts models.ExportOptions) (*models.Artifact, error) {
	s.mu.Lock()
	set := slices.Clone(s.notes)
	if opts.IncludeUnsaved && s.draft != nil && !s.draft.IsBlank() {
		set = append(set, s.draft.AsUnsavedNote(s.draftAt))
	}
	s.mu.Unlock()

	if len(set) == 0 {
		s.notices.Info(app.MsgNoNotesToExport)
		return nil, ErrNothingToExport
	}

	artifact, err := s.exporter.render(ctx, format, set)
	if err != nil {
		s.logger.Err(err).Str("func", "noteService.Render").Str("format", string(format)).Msg("error rendering notes")
		if format == models.FormatDocument {
			s.notices.Error(app.MsgDocumentFailed)
		}
		return nil, err
	}

	return artifact, nil
}

func (s *noteService) DefaultExportName(format models.ExportFormat) string {
	if format == models.FormatDocument {
		if d, ok := s.Draft(); ok && strings.TrimSpace(d.Title) != "" {
			return utils.SanitizeFileName(d.Title)
		}
	}
	return utils.StampedName(exportNamePrefix, exportNameLayout, s.now().In(s.loc))
}

func (s *noteService) FormatTime(t time.Time) string {
	return t.In(s.loc).Format(displayTimeLayout)
}

// persistLocked writes next and adopts it only when the write succeeded.
// s.mu must be held.
func (s *noteService) persistLocked(ctx context.Context, next []models.Note) error {
	if err := s.repo.SaveNotes(ctx, next); err != nil {
		s.logger.Err(err).Str("func", "noteService.persistLocked").Msg("error persisting notes")
		s.notices.Error(app.MsgStorageError)
		return fmt.Errorf("error persisting notes: %w", err)
	}
	s.notes = next
	return nil
}

func (s *noteService) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

// timestamp is the current time at the millisecond precision notes are
// stored with.
func (s *noteService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func confirmed(ctx context.Context, confirm Confirmer, message string) bool {
	return confirm != nil && confirm.Confirm(ctx, message)
}
