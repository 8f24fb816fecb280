package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-desk-widget/internal/config"
	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

// Storages groups the widget's persistence into a single value passed to
// the service layer.
type Storages struct {
	// LocalStorage is the key-value backend.
	LocalStorage KeyValueStorage
	// NoteRepository keeps the note collection inside LocalStorage.
	NoteRepository NoteRepository

	closer io.Closer
}

// NewStorages initialises the storage layer for cfg.DSN:
//   - [MemoryDSN] keeps everything in memory;
//   - a path ending in ".json" uses a JSON file;
//   - anything else opens (creating if needed) and migrates a SQLite file.
func NewStorages(ctx context.Context, cfg config.WidgetStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	if cfg.DSN == MemoryDSN || strings.HasSuffix(strings.ToLower(cfg.DSN), ".json") {
		kv, err := NewFileStorage(cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return newStorages(kv, nil, logger), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(NewLocalStorage(db, logger), db, logger), nil
}

func newStorages(kv KeyValueStorage, closer io.Closer, logger *logger.Logger) *Storages {
	return &Storages{
		LocalStorage:   kv,
		NoteRepository: NewNoteRepository(kv, logger),
		closer:         closer,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
