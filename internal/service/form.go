package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"training_briefing/internal/models"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrSessionNotFound    = errors.New("form session not found")
	ErrUnknownMenu        = errors.New("menu is not one of the offered options")
	ErrNotSubmittable     = errors.New("name and menu are required")
	ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")
)

type formSession struct {
	sel      models.LunchSelection
	inFlight bool
	touched  time.Time
}

// FormService owns the lunch form of every open view. Each session's state
// lives only as long as the view: Close drops it and the sweeper removes
// sessions idle for longer than the TTL.
type FormService struct {
	mu       sync.Mutex
	sessions map[string]*formSession

	menus   []string
	allowed map[string]struct{}
	ttl     time.Duration
	now     func() time.Time
}

func NewFormService(menus []string, ttl time.Duration) *FormService {
	allowed := make(map[string]struct{}, len(menus))
	for _, m := range menus {
		allowed[m] = struct{}{}
	}
	return &FormService{
		sessions: make(map[string]*formSession),
		menus:    append([]string(nil), menus...),
		allowed:  allowed,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Menus returns the offered options in display order.
func (s *FormService) Menus() []string {
	return append([]string(nil), s.menus...)
}

// CanSubmit is the gating predicate: a non-blank name and an offered menu.
func (s *FormService) CanSubmit(sel models.LunchSelection) bool {
	if strings.TrimSpace(sel.Name) == "" || sel.Menu == "" {
		return false
	}
	_, ok := s.allowed[sel.Menu]
	return ok
}

// Open starts a new, empty form session.
func (s *FormService) Open(_ context.Context) (models.FormState, error) {
	id := uuid.NewString()
	fs := &formSession{touched: s.now()}

	s.mu.Lock()
	s.sessions[id] = fs
	st := s.stateLocked(id, fs)
	s.mu.Unlock()

	return st, nil
}

// Close discards a session. Closing an unknown session is an error so callers notice stale handles.
func (s *FormService) Close(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Get reads a session's form.
func (s *FormService) Get(_ context.Context, sessionID string) (models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.sessions[sessionID]
	if !ok {
		return models.FormState{}, ErrSessionNotFound
	}
	return s.stateLocked(sessionID, fs), nil
}

// Update applies a partial edit. Names are NFC-normalised so decomposed
// Hangul typed on some keyboards compares equal to the composed form. A
// menu must be empty (the placeholder) or one of the offered options.
// Edits are refused with ErrSubmissionInFlight while a submit is out, since
// a successful submit clears the form.
func (s *FormService) Update(_ context.Context, sessionID string, u FormUpdate) (models.FormState, error) {
	if u.Menu != nil && *u.Menu != "" {
		if _, ok := s.allowed[*u.Menu]; !ok {
			return models.FormState{}, ErrUnknownMenu
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.sessions[sessionID]
	if !ok {
		return models.FormState{}, ErrSessionNotFound
	}
	if fs.inFlight {
		return models.FormState{}, ErrSubmissionInFlight
	}
	if u.Name != nil {
		fs.sel.Name = norm.NFC.String(*u.Name)
	}
	if u.Menu != nil {
		fs.sel.Menu = *u.Menu
	}
	fs.touched = s.now()
	return s.stateLocked(sessionID, fs), nil
}

// beginSubmit marks the session in flight and hands back a copy of its selection.
func (s *FormService) beginSubmit(sessionID string) (models.LunchSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.sessions[sessionID]
	if !ok {
		return models.LunchSelection{}, ErrSessionNotFound
	}
	if fs.inFlight {
		return models.LunchSelection{}, ErrSubmissionInFlight
	}
	if !s.CanSubmit(fs.sel) {
		return models.LunchSelection{}, ErrNotSubmittable
	}
	fs.inFlight = true
	fs.touched = s.now()
	return fs.sel, nil
}

// finishSubmit clears the in-flight mark and, on success, empties the form.
// A session closed while the call was out is left closed.
func (s *FormService) finishSubmit(sessionID string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	fs.inFlight = false
	if succeeded {
		fs.sel = models.LunchSelection{}
	}
	fs.touched = s.now()
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
// In-flight sessions are kept until their call finishes.
func (s *FormService) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, fs := range s.sessions {
		if fs.inFlight || now.Sub(fs.touched) <= s.ttl {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Run sweeps idle sessions every tick until ctx is cancelled.
func (s *FormService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Sweep(now)
		}
	}
}

func (s *FormService) stateLocked(id string, fs *formSession) models.FormState {
	return models.FormState{
		SessionID: id,
		Selection: fs.sel,
		CanSubmit: !fs.inFlight && s.CanSubmit(fs.sel),
		InFlight:  fs.inFlight,
	}
}
