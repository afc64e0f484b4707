package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"training_briefing/internal/models"
	"training_briefing/internal/repository"
)

type AttemptLogService struct {
	attempts repository.AttemptRepo
}

func NewAttemptLogService(attempts repository.AttemptRepo) *AttemptLogService {
	return &AttemptLogService{attempts: attempts}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errUnknownOutcome   = errors.New("unknown outcome: use SUCCESS, TRANSPORT_ERROR or SERVER_REJECTION")
)

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeOutcome(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f AttemptFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	outcome := normalizeOutcome(f.Outcome)
	switch outcome {
	case "", OutcomeSuccess, OutcomeTransportError, OutcomeServerRejection:
	default:
		return time.Time{}, time.Time{}, "", errUnknownOutcome
	}
	return from, to, outcome, nil
}

// List returns logged submit attempts matching f, oldest first.
func (s *AttemptLogService) List(ctx context.Context, f AttemptFilter) ([]models.SubmissionAttempt, error) {
	from, to, outcome, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.attempts.List(ctx, from, to, outcome)
}
