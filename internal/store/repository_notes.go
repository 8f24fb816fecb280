package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/models"
)

// NotesKey is the storage key holding the serialized note collection.
const NotesKey = "notes"

type noteRepository struct {
	storage KeyValueStorage
	logger  *logger.Logger
}

// NewNoteRepository returns a [NoteRepository] keeping the collection as a
// JSON array under [NotesKey].
func NewNoteRepository(storage KeyValueStorage, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *noteRepository) LoadNotes(ctx context.Context) ([]models.Note, error) {
	raw, ok, err := r.storage.GetItem(ctx, NotesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if !ok || raw == "" {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "noteRepository.LoadNotes").
			Int("size", len(raw)).
			Msg("stored notes are corrupt, starting with an empty collection")
		return []models.Note{}, nil
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (r *noteRepository) SaveNotes(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingNotes, err)
	}

	if err = r.storage.SetItem(ctx, NotesKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}

	return nil
}
