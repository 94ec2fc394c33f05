package service

import (
	"sync"
	"time"

	"github.com/mtmal/snake-server/game/engine"
)

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time

	// mu serializes all engine mutation for this session. A direction
	// change racing a tick from another connection is ordered here, not in
	// the engine.
	mu sync.Mutex
}

// Do runs fn with exclusive access to the session's engine and refreshes the
// last-accessed timestamp.
func (s *Session) Do(fn func(eng *engine.GameEngine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LastAccessedAt = time.Now()
	return fn(s.Engine)
}

// Touch refreshes the last-accessed timestamp without touching the engine.
func (s *Session) Touch() {
	s.mu.Lock()
	s.LastAccessedAt = time.Now()
	s.mu.Unlock()
}

// LastAccess returns the last-accessed timestamp under the session lock.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastAccessedAt
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// TickResult contains the result of advancing a session by one step
type TickResult struct {
	GameState *engine.GameState `json:"game_state"`
	GameOver  bool              `json:"game_over"`
}

// AIMoveResult contains the result of an AI-driven step: the direction the
// heuristic chose and the state after applying it and ticking once.
type AIMoveResult struct {
	Direction engine.Direction  `json:"direction"`
	GameState *engine.GameState `json:"game_state"`
	GameOver  bool              `json:"game_over"`
}

// ConfigInfo describes an available board configuration
type ConfigInfo struct {
	Filename    string `json:"filename,omitempty"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}
