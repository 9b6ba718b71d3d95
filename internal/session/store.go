package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/pkg/models"
	"github.com/ysqsimon/Remotely/pkg/utils"
)

// Session is one search conversation: an append-only transcript keyed by a
// time-ordered ID. Transcripts live in process memory only and are evicted
// after the configured idle TTL.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time
	Messages  []models.ChatMessage
}

// Store holds active search sessions in memory. A background loop evicts
// idle sessions; concurrent turns on one session serialize on the store
// lock, so the transcript always reflects completion order (last response
// wins).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	interval time.Duration
	logger   logging.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewStore creates a session store with the configured TTL settings
func NewStore(cfg *config.Config) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      cfg.Sessions.TTL,
		interval: cfg.Sessions.CleanupInterval,
		logger:   logging.GetGlobalLogger(),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the background cleanup loop
func (s *Store) Start(ctx context.Context) error {
	s.logger.Info("Starting session store", map[string]interface{}{
		"ttl":              s.ttl.String(),
		"cleanup_interval": s.interval.String(),
	})

	go s.cleanupLoop(ctx)
	return nil
}

// Stop terminates the cleanup loop
func (s *Store) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	return nil
}

// Create allocates a new empty session and returns its ID
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := utils.GenerateMessageID()
	s.sessions[id] = &Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
	}
	return id
}

// Transcript returns a snapshot of the session's messages. The boolean is
// false when the session does not exist or has been evicted.
func (s *Store) Transcript(id string) ([]models.ChatMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return append([]models.ChatMessage(nil), session.Messages...), true
}

// AppendTurn appends the user message and the assistant reply of one
// completed turn atomically, keeping the transcript append-only.
func (s *Store) AppendTurn(id string, userMsg, aiMsg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return utils.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}

	session.Messages = append(session.Messages, userMsg, aiMsg)
	session.LastSeen = time.Now()
	return nil
}

// Count returns the number of active sessions (for monitoring)
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, session := range s.sessions {
		if session.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Debug("Evicted expired sessions", map[string]interface{}{
			"evicted":   evicted,
			"remaining": len(s.sessions),
		})
	}
}
