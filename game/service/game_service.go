package service

import (
	"context"

	"github.com/mtmal/snake-server/game/engine"
	"github.com/mtmal/snake-server/game/leaderboard"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	SetDirection(ctx context.Context, sessionID string, direction engine.Direction) (*engine.GameState, error)
	Tick(ctx context.Context, sessionID string) (*TickResult, error)
	AIMove(ctx context.Context, sessionID string) (*AIMoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Leaderboard
	SubmitScore(ctx context.Context, name string, score int) ([]leaderboard.Entry, error)
	GetLeaderboard(ctx context.Context) ([]leaderboard.Entry, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles board configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// ScoreBoard defines the leaderboard operations the service depends on
type ScoreBoard interface {
	Submit(name string, score int) []leaderboard.Entry
	Top() []leaderboard.Entry
}
