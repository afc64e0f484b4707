package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"training_briefing/internal/logger"
	"training_briefing/internal/models"
	"training_briefing/internal/repository"
	"training_briefing/internal/webhook"

	"github.com/google/uuid"
)

// Attempt outcomes written to the diagnostic log.
const (
	OutcomeSuccess         = "SUCCESS"
	OutcomeTransportError  = "TRANSPORT_ERROR"
	OutcomeServerRejection = "SERVER_REJECTION"
)

// Sender delivers one record to the external sheet.
type Sender interface {
	Send(ctx context.Context, rec models.SubmissionRecord) error
}

// SubmissionService runs the single-attempt submit workflow for a form session.
type SubmissionService struct {
	forms      *FormService
	sender     Sender
	storage    repository.LocalStorage
	attempts   repository.AttemptRepo
	storageKey string
	log        *logger.Logger
	now        func() time.Time
}

func NewSubmissionService(
	forms *FormService,
	sender Sender,
	storage repository.LocalStorage,
	attempts repository.AttemptRepo,
	storageKey string,
	log *logger.Logger,
) *SubmissionService {
	if log == nil {
		log = logger.Nop()
	}
	return &SubmissionService{
		forms:      forms,
		sender:     sender,
		storage:    storage,
		attempts:   attempts,
		storageKey: storageKey,
		log:        log,
		now:        time.Now,
	}
}

// Submit stamps the session's selection, posts it once, and on a 2xx
// caches it under the storage key and clears the form. On any failure the
// form and the cache are left as they were and the error is returned
// (a *webhook.TransportError or *webhook.ServerRejection for remote
// failures). No retry is attempted.
func (s *SubmissionService) Submit(ctx context.Context, sessionID string) (models.SubmissionRecord, error) {
	sel, err := s.forms.beginSubmit(sessionID)
	if err != nil {
		return models.SubmissionRecord{}, err
	}

	rec := models.NewSubmissionRecord(sel, s.now())

	// The call runs to completion even if the caller goes away; the HTTP
	// client's own timeout bounds it.
	sendErr := s.sender.Send(context.WithoutCancel(ctx), rec)
	if sendErr != nil {
		s.forms.finishSubmit(sessionID, false)
		s.recordFailure(ctx, sessionID, rec, sendErr)
		return models.SubmissionRecord{}, fmt.Errorf("submit lunch: %w", sendErr)
	}

	cacheErr := s.cache(context.WithoutCancel(ctx), rec)
	s.forms.finishSubmit(sessionID, true)

	meta := map[string]any{"name": rec.Name, "menu": rec.Menu, "timestamp": rec.Timestamp}
	if cacheErr != nil {
		// the sheet already has the row; resubmitting would duplicate it
		s.log.Errorw("submission_cache_write_failed", "err", cacheErr, "session_id", sessionID, "key", s.storageKey)
		meta["cache_error"] = cacheErr.Error()
	}
	s.appendAttempt(ctx, models.SubmissionAttempt{
		AttemptID:   uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Outcome:     OutcomeSuccess,
		SessionID:   sessionID,
		Description: "lunch selection submitted",
		Metadata:    meta,
	})
	s.log.Infow("submission_succeeded", "session_id", sessionID, "menu", rec.Menu)

	return rec, nil
}

func (s *SubmissionService) cache(ctx context.Context, rec models.SubmissionRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode cached record: %w", err)
	}
	return s.storage.SetItem(ctx, s.storageKey, string(b))
}

// LastSubmitted reads back the cached record, if any.
func (s *SubmissionService) LastSubmitted(ctx context.Context) (models.SubmissionRecord, bool, error) {
	raw, ok, err := s.storage.GetItem(ctx, s.storageKey)
	if err != nil || !ok {
		return models.SubmissionRecord{}, false, err
	}
	var rec models.SubmissionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.SubmissionRecord{}, false, fmt.Errorf("decode cached record: %w", err)
	}
	return rec, true, nil
}

func (s *SubmissionService) recordFailure(ctx context.Context, sessionID string, rec models.SubmissionRecord, err error) {
	outcome := OutcomeTransportError
	meta := map[string]any{"menu": rec.Menu, "timestamp": rec.Timestamp}

	var rej *webhook.ServerRejection
	if errors.As(err, &rej) {
		outcome = OutcomeServerRejection
		meta["status"] = rej.StatusCode
	}

	s.log.Errorw("submission_failed", "err", err, "outcome", outcome, "session_id", sessionID)
	s.appendAttempt(ctx, models.SubmissionAttempt{
		AttemptID:   uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Outcome:     outcome,
		SessionID:   sessionID,
		Description: err.Error(),
		Metadata:    meta,
	})
}

func (s *SubmissionService) appendAttempt(ctx context.Context, a models.SubmissionAttempt) {
	if s.attempts == nil {
		return
	}
	if err := s.attempts.Append(context.WithoutCancel(ctx), a); err != nil {
		s.log.Warnw("attempt_log_append_failed", "err", err, "outcome", a.Outcome)
	}
}
