package service

import (
	"context"
	"time"

	"training_briefing/internal/logger"
	"training_briefing/internal/models"
	"training_briefing/internal/repository"
)

// Countdown exposes the live time-to-start.
type Countdown interface {
	Snapshot() models.CountdownState
	Start(ctx context.Context, tick time.Duration) <-chan models.CountdownState
}

// Briefing exposes the read-only page content.
type Briefing interface {
	GetBriefing(ctx context.Context) (models.Briefing, error)
}

// Forms owns per-view lunch form state.
type Forms interface {
	Menus() []string
	Open(ctx context.Context) (models.FormState, error)
	Close(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (models.FormState, error)
	Update(ctx context.Context, sessionID string, u FormUpdate) (models.FormState, error)
}

// Submission runs the submit workflow.
type Submission interface {
	Submit(ctx context.Context, sessionID string) (models.SubmissionRecord, error)
	LastSubmitted(ctx context.Context) (models.SubmissionRecord, bool, error)
}

// SessionTokens signs and verifies view-session handles.
type SessionTokens interface {
	IssueToken(sessionID string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// AttemptLog exposes the diagnostic submit log.
type AttemptLog interface {
	List(ctx context.Context, f AttemptFilter) ([]models.SubmissionAttempt, error)
}

// Sweeper runs the background loop that drops abandoned form sessions.
// Stop via context cancellation in main() for graceful shutdown.
type Sweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Countdown     Countdown
	Briefing      Briefing
	Forms         Forms
	Submission    Submission
	SessionTokens SessionTokens
	AttemptLog    AttemptLog
	Sweeper       Sweeper
}

// Deps are the non-repository inputs the services need.
type Deps struct {
	Event         models.EventMeta
	Menus         []string
	StorageKey    string
	Sender        Sender
	SessionSecret string
	SessionTTL    time.Duration
	CountdownTick time.Duration
	Log           *logger.Logger
}

func NewService(repos *repository.Repository, d Deps) *Service {
	forms := NewFormService(d.Menus, d.SessionTTL)
	countdown := NewCountdownService(d.Event.StartsAt, d.CountdownTick)

	return &Service{
		Countdown:     countdown,
		Briefing:      NewBriefingService(d.Event, forms, countdown),
		Forms:         forms,
		Submission:    NewSubmissionService(forms, d.Sender, repos.Storage, repos.Attempts, d.StorageKey, d.Log),
		SessionTokens: NewSessionTokenService(d.SessionSecret, d.SessionTTL),
		AttemptLog:    NewAttemptLogService(repos.Attempts),
		Sweeper:       forms,
	}
}
