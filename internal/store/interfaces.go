package store

import (
	"context"

	"github.com/MKhiriev/go-desk-widget/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a persistent string key-value store, the local
// equivalent of a browser's local storage.
type KeyValueStorage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// NoteRepository persists the whole ordered note collection as one entry.
type NoteRepository interface {
	// LoadNotes reads the collection. A missing or undecodable entry yields
	// an empty collection and no error.
	LoadNotes(ctx context.Context) ([]models.Note, error)
	// SaveNotes replaces the stored collection synchronously.
	SaveNotes(ctx context.Context, notes []models.Note) error
}
