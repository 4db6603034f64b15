package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the open assistant sessions in memory and expires idle ones.
type Manager struct {
	deps   Deps
	ttl    time.Duration
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds sessions from deps. A ttl of zero disables expiry.
func NewManager(deps Deps, ttl time.Duration) *Manager {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = RealClock()
	}
	return &Manager{
		deps:     deps,
		ttl:      ttl,
		logger:   deps.Logger.With(zap.String("component", "chat-manager")),
		sessions: make(map[string]*Session),
	}
}

// Create opens and starts a session. Each session gets its own navigation queue.
func (m *Manager) Create(shopperID string) *Session {
	if shopperID == "" {
		shopperID = "guest-" + uuid.NewString()
	}
	deps := m.deps
	deps.Navigator = &DirectiveQueue{}
	s := NewSession(uuid.NewString(), shopperID, deps)
	s.Start()

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	m.logger.Info("Session created", zap.String("session", s.ID()), zap.String("shopper", shopperID))
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close ends and forgets a session.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	m.logger.Info("Session closed", zap.String("session", id))
	return nil
}

// Len reports how many sessions are open.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than the TTL at now and returns how many it closed.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	var expired []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.LastActivity()) > m.ttl {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
		m.logger.Info("Session expired", zap.String("session", s.ID()))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.deps.Clock.Now()); n > 0 {
				m.logger.Debug("Swept idle sessions", zap.Int("expired", n))
			}
		}
	}
}

// Shutdown closes every session and waits for their background work.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		all = append(all, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
	for _, s := range all {
		s.Wait()
	}
}
