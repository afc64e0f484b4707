package service

import (
	"context"
	"testing"
	"time"

	"training_briefing/internal/models"
)

type recordingAttemptRepo struct {
	fakeAttempts
	lastFrom, lastTo time.Time
	lastOutcome      string
}

func (r *recordingAttemptRepo) List(ctx context.Context, from, to time.Time, outcome string) ([]models.SubmissionAttempt, error) {
	r.lastFrom, r.lastTo, r.lastOutcome = from, to, outcome
	return r.fakeAttempts.List(ctx, from, to, outcome)
}

func TestAttemptLogService_List(t *testing.T) {
	t.Parallel()

	kst := time.FixedZone("KST", 9*3600)
	from := time.Date(2025, 10, 1, 9, 0, 0, 0, kst)
	to := time.Date(2025, 10, 2, 9, 0, 0, 0, kst)

	cases := []struct {
		name    string
		filter  AttemptFilter
		wantErr bool
		check   func(t *testing.T, r *recordingAttemptRepo)
	}{
		{
			name:   "normalizes bounds to UTC and outcome to upper case",
			filter: AttemptFilter{From: from, To: to, Outcome: " server_rejection "},
			check: func(t *testing.T, r *recordingAttemptRepo) {
				if r.lastFrom.Location() != time.UTC || !r.lastFrom.Equal(from) {
					t.Fatalf("from = %v", r.lastFrom)
				}
				if r.lastTo.Location() != time.UTC || !r.lastTo.Equal(to) {
					t.Fatalf("to = %v", r.lastTo)
				}
				if r.lastOutcome != OutcomeServerRejection {
					t.Fatalf("outcome = %q", r.lastOutcome)
				}
			},
		},
		{
			name:   "zero bounds stay zero",
			filter: AttemptFilter{},
			check: func(t *testing.T, r *recordingAttemptRepo) {
				if !r.lastFrom.IsZero() || !r.lastTo.IsZero() || r.lastOutcome != "" {
					t.Fatalf("expected open filter, got %v %v %q", r.lastFrom, r.lastTo, r.lastOutcome)
				}
			},
		},
		{name: "from after to", filter: AttemptFilter{From: to, To: from}, wantErr: true},
		{name: "unknown outcome", filter: AttemptFilter{Outcome: "MAYBE"}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &recordingAttemptRepo{}
			svc := NewAttemptLogService(repo)
			_, err := svc.List(context.Background(), tc.filter)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			tc.check(t, repo)
		})
	}
}
