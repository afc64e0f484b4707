package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"training_briefing/internal/models"

	"github.com/google/uuid"
)

type AttemptSQLite struct {
	db *sql.DB
}

func NewAttemptSQLite(db *sql.DB) *AttemptSQLite { return &AttemptSQLite{db: db} }

var _ AttemptRepo = (*AttemptSQLite)(nil)

const insertAttemptSQL = `
		INSERT INTO submission_attempts (id, occurred_at, outcome, session_id, message, meta)
		VALUES (?, ?, ?, ?, ?, ?)
	`

// Append inserts an attempt. Missing AttemptID / OccurredAt are filled in.
func (r *AttemptSQLite) Append(ctx context.Context, a models.SubmissionAttempt) error {
	if a.AttemptID == "" {
		a.AttemptID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	} else {
		a.OccurredAt = a.OccurredAt.UTC()
	}

	var metaPtr *string
	if a.Metadata != nil {
		if b, err := json.Marshal(a.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertAttemptSQL,
		a.AttemptID,
		a.OccurredAt,
		strings.ToUpper(strings.TrimSpace(a.Outcome)),
		a.SessionID,
		a.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("append attempt %s: %w", a.AttemptID, err)
	}
	return nil
}

// List returns attempts in [from, to] (zero bounds are open) optionally filtered by outcome, oldest first.
func (r *AttemptSQLite) List(ctx context.Context, from, to time.Time, outcome string) ([]models.SubmissionAttempt, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if outcome = strings.ToUpper(strings.TrimSpace(outcome)); outcome != "" {
		conds = append(conds, "outcome = ?")
		args = append(args, outcome)
	}

	q := `SELECT id, occurred_at, outcome, session_id, message, meta FROM submission_attempts`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	out := make([]models.SubmissionAttempt, 0, 16)
	for rows.Next() {
		var a models.SubmissionAttempt
		var metaStr sql.NullString
		if err := rows.Scan(&a.AttemptID, &a.OccurredAt, &a.Outcome, &a.SessionID, &a.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.OccurredAt = a.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				a.Metadata = v
			} else {
				a.Metadata = metaStr.String
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
