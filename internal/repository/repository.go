package repository

import (
	"context"
	"database/sql"
	"time"

	"training_briefing/internal/models"
)

// LocalStorage is a string key/value store where each key holds a single value.
type LocalStorage interface {
	SetItem(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string) (string, bool, error)
}

// AttemptRepo is the append-only diagnostic log of submit calls.
type AttemptRepo interface {
	Append(ctx context.Context, a models.SubmissionAttempt) error
	List(ctx context.Context, from, to time.Time, outcome string) ([]models.SubmissionAttempt, error)
}

type Repository struct {
	Storage  LocalStorage
	Attempts AttemptRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Storage:  NewStorageSQLite(db),
		Attempts: NewAttemptSQLite(db),
	}
}
