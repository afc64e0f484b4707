package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"training_briefing/internal/models"
	"training_briefing/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCountdown struct {
	state    models.CountdownState
	lastTick time.Duration
	stopped  chan struct{}
}

func (m *mockCountdown) Snapshot() models.CountdownState { return m.state }

func (m *mockCountdown) Start(ctx context.Context, tick time.Duration) <-chan models.CountdownState {
	m.lastTick = tick
	out := make(chan models.CountdownState)
	go func() {
		defer close(out)
		if m.stopped != nil {
			defer close(m.stopped)
		}
		t := time.NewTicker(tick)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case out <- m.state:
			}
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
	return out
}

type mockBriefing struct {
	resp models.Briefing
	err  error
}

func (m *mockBriefing) GetBriefing(ctx context.Context) (models.Briefing, error) {
	return m.resp, m.err
}

type mockForms struct {
	mu     sync.Mutex
	menus  []string
	state  models.FormState
	err    error
	getErr error

	openCalls  int
	closedID   string
	lastID     string
	lastUpdate service.FormUpdate
}

func (m *mockForms) Menus() []string { return m.menus }

func (m *mockForms) Open(ctx context.Context) (models.FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openCalls++
	return m.state, m.err
}

func (m *mockForms) Close(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closedID = sessionID
	return m.err
}

func (m *mockForms) Get(ctx context.Context, sessionID string) (models.FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID = sessionID
	if m.getErr != nil {
		return models.FormState{}, m.getErr
	}
	return m.state, m.err
}

func (m *mockForms) Update(ctx context.Context, sessionID string, u service.FormUpdate) (models.FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID = sessionID
	m.lastUpdate = u
	return m.state, m.err
}

type mockSubmission struct {
	rec      models.SubmissionRecord
	err      error
	saved    models.SubmissionRecord
	savedOK  bool
	savedErr error
	lastID   string
	calls    int
}

func (m *mockSubmission) Submit(ctx context.Context, sessionID string) (models.SubmissionRecord, error) {
	m.calls++
	m.lastID = sessionID
	return m.rec, m.err
}

func (m *mockSubmission) LastSubmitted(ctx context.Context) (models.SubmissionRecord, bool, error) {
	return m.saved, m.savedOK, m.savedErr
}

type mockTokens struct {
	token     string
	issueErr  error
	parseID   string
	parseErr  error
	lastIssue string
	lastParse string
}

func (m *mockTokens) IssueToken(sessionID string) (string, error) {
	m.lastIssue = sessionID
	return m.token, m.issueErr
}

func (m *mockTokens) ParseToken(token string) (string, error) {
	m.lastParse = token
	return m.parseID, m.parseErr
}

type mockAttemptLog struct {
	resp     []models.SubmissionAttempt
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockAttemptLog) List(ctx context.Context, f service.AttemptFilter) ([]models.SubmissionAttempt, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Outcome
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
