package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// StorageSQLite keeps one row per key in local_storage; writes overwrite.
type StorageSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewStorageSQLite(db *sql.DB) *StorageSQLite {
	return &StorageSQLite{db: db, now: time.Now}
}

var _ LocalStorage = (*StorageSQLite)(nil)

var errEmptyKey = errors.New("storage key is empty")

const (
	upsertItemSQL = `
		INSERT INTO local_storage (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectItemSQL = `SELECT value FROM local_storage WHERE key=?`
)

// SetItem writes value under key, replacing whatever was there.
func (r *StorageSQLite) SetItem(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errEmptyKey
	}
	if _, err := r.db.ExecContext(ctx, upsertItemSQL, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}

// GetItem reads the value under key. ok is false when nothing was stored yet.
func (r *StorageSQLite) GetItem(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errEmptyKey
	}
	var value string
	if err := r.db.QueryRowContext(ctx, selectItemSQL, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get item %q: %w", key, err)
	}
	return value, true, nil
}
