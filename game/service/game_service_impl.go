package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtmal/snake-server/game/engine"
	"github.com/mtmal/snake-server/game/leaderboard"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	scores   ScoreBoard
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, scores ScoreBoard) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		scores:   scores,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Session manager generates a UUID for the empty id.
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	session.Touch()
	return s.sessionInfo(session), nil
}

// ListSessions returns information about all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()

	result := make([]*SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, s.sessionInfo(session))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SetDirection replaces the snake's heading for the next tick. The new
// direction is not validated against the current one: an immediate reversal
// is accepted and resolved by the next tick's self-collision check.
func (s *gameServiceImpl) SetDirection(ctx context.Context, sessionID string, direction engine.Direction) (*engine.GameState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var state *engine.GameState
	err = session.Do(func(eng *engine.GameEngine) error {
		eng.SetDirection(direction)
		state = eng.GetState().Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Tick advances a session's simulation by exactly one step
func (s *gameServiceImpl) Tick(ctx context.Context, sessionID string) (*TickResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var result *TickResult
	err = session.Do(func(eng *engine.GameEngine) error {
		if err := eng.Tick(); err != nil {
			return fmt.Errorf("tick failed: %w", err)
		}
		result = &TickResult{
			GameState: eng.GetState().Clone(),
			GameOver:  eng.IsGameOver(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AIMove lets the greedy heuristic pick a heading, applies it, and advances
// the simulation by one step. On a finished game both the selection and the
// tick are no-ops.
func (s *gameServiceImpl) AIMove(ctx context.Context, sessionID string) (*AIMoveResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var result *AIMoveResult
	err = session.Do(func(eng *engine.GameEngine) error {
		direction := eng.AIDirection()
		eng.SetDirection(direction)
		if err := eng.Tick(); err != nil {
			return fmt.Errorf("tick failed: %w", err)
		}
		result = &AIMoveResult{
			Direction: direction,
			GameState: eng.GetState().Clone(),
			GameOver:  eng.IsGameOver(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reset reinitializes a session's game to its starting state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var state *engine.GameState
	err = session.Do(func(eng *engine.GameEngine) error {
		reset, err := eng.Reset()
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		state = reset.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// GetGameState returns a snapshot of a session's current state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var state *engine.GameState
	err = session.Do(func(eng *engine.GameEngine) error {
		state = eng.GetState().Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SubmitScore records a score and returns the updated top-10 board
func (s *gameServiceImpl) SubmitScore(ctx context.Context, name string, score int) ([]leaderboard.Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if score < 0 {
		return nil, fmt.Errorf("score must be non-negative, got %d", score)
	}
	return s.scores.Submit(name, score), nil
}

// GetLeaderboard returns the current top-10 board
func (s *gameServiceImpl) GetLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	return s.scores.Top(), nil
}

// ListConfigs returns all available board configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// sessionInfo assembles the session DTO under the session's lock.
func (s *gameServiceImpl) sessionInfo(session *Session) *SessionInfo {
	info := &SessionInfo{
		ID:         session.ID,
		GameConfig: session.Config,
	}
	session.Do(func(eng *engine.GameEngine) error {
		info.ConfigName = session.Config.Name
		info.CreatedAt = session.CreatedAt
		info.LastAccessedAt = session.LastAccessedAt
		info.GameState = eng.GetState().Clone()
		return nil
	})
	return info
}
