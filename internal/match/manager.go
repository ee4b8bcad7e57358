// Package match hosts concurrent games. Each session owns an independent
// GameState and RNG; nothing is shared across games, so the safe concurrency
// unit is one full game per session.
package match

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tianjibian/tianji-server-go/internal/engine"
)

// Session is one running game. All access goes through the session's lock;
// the engine itself stays single-threaded per game.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	ctrl *engine.TurnController
}

// View returns the current state view.
func (s *Session) View() engine.StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.ToView(s.ctrl.State())
}

// Actions returns the current player's catalog.
func (s *Session) Actions() []engine.ActionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.ActionsToView(s.ctrl.ValidActions())
}

// Act applies the catalog entry with the given id.
func (s *Session) Act(actionID int) (*engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Apply(actionID)
}

// EndTurn closes the current player's turn. Returns the verdict when the
// game just ended.
func (s *Session) EndTurn() *engine.VictoryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.EndTurn()
}

// Verdict returns the terminal result, or nil while the game is live.
func (s *Session) Verdict() *engine.VictoryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Verdict()
}

// Manager tracks active sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	engine *engine.Engine
	logger *zap.Logger
}

// NewManager creates a match manager backed by the given engine.
func NewManager(eng *engine.Engine, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		engine:   eng,
		logger:   logger,
	}
}

// CreateGame sets up a new game and registers a session for it.
func (m *Manager) CreateGame(numPlayers int) (*Session, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	state, err := m.engine.SetupGame(numPlayers, rng)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		ctrl:      m.engine.NewTurnController(state, rng),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("game created",
		zap.String("game_id", session.ID),
		zap.Int("players", numPlayers),
	)
	return session, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Info("game removed", zap.String("game_id", id))
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the active session ids.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// ErrSessionNotFound formats a not-found error for transport layers.
func ErrSessionNotFound(id string) error {
	return fmt.Errorf("game %s not found", id)
}
