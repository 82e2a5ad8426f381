package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/typeid"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrForbidden = errors.New("forbidden")
)

// Service keeps sessions in memory.
type Service struct {
	cfg            engine.Config
	followupAnswer string

	mu       sync.RWMutex
	sessions map[string]*Session
	onDelete []func(id string)
}

func NewService(cfg engine.Config, followupAnswer string) *Service {
	return &Service{
		cfg:            cfg,
		followupAnswer: followupAnswer,
		sessions:       make(map[string]*Session),
	}
}

func (s *Service) Create() (*Session, error) {
	sess, err := newSession(typeid.NewSessionID(), s.cfg, s.followupAnswer)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	slog.Info("session created", "session", sess.ID)
	return sess, nil
}

func (s *Service) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	hooks := make([]func(id string), len(s.onDelete))
	copy(hooks, s.onDelete)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	for _, fn := range hooks {
		fn(id)
	}
	sess.close()
	slog.Info("session deleted", "session", id)
	return nil
}

// OnDelete registers fn to run when a session is deleted, before its engine
// is closed.
func (s *Service) OnDelete(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDelete = append(s.onDelete, fn)
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
