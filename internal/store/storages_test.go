package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/models"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.WidgetStorage{DSN: MemoryDSN}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.LocalStorage)
	require.NotNil(t, s.NoteRepository)
	assert.NoError(t, s.Close())
}

func TestNewStorages_JSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.JSON")

	s, err := NewStorages(ctx, config.WidgetStorage{DSN: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.NoteRepository.SaveNotes(ctx, []models.Note{{ID: "x", Title: "T"}}))
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewStorages_TruncatedJSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":{"notes":"[{\"id\":\"1\"`), 0o600))

	s, err := NewStorages(ctx, config.WidgetStorage{DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	notes, err := s.NoteRepository.LoadNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
