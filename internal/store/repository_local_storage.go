// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
)

const (
	localStorageTable = "local_storage"
	colKey            = "item_key"
	colValue          = "item_value"
	colUpdatedAt      = "updated_at"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type localStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStorage returns a [KeyValueStorage] backed by the local_storage
// table of db.
func NewLocalStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &localStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Select(colValue).
		From(localStorageTable).
		Where(sq.Eq{colKey: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "localStorage.GetItem").Str("key", key).Msg("failed to build query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).Str("func", "localStorage.GetItem").Str("key", key).Msg("failed to read item")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (l *localStorage) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Insert(localStorageTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, l.now().UTC()).
		Suffix("ON CONFLICT(" + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "localStorage.SetItem").Str("key", key).Msg("failed to build upsert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorage.SetItem").Str("key", key).Msg("failed to execute upsert")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (l *localStorage) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Delete(localStorageTable).
		Where(sq.Eq{colKey: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "localStorage.RemoveItem").Str("key", key).Msg("failed to build delete")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorage.RemoveItem").Str("key", key).Msg("failed to delete item")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}
