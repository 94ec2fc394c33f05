package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() (*GameState, error)
	IsGameOver() bool
	GetScore() int

	// Simulation operations
	Tick() error
	SetDirection(d Direction)
	GetDirection() Direction
	AIDirection() Direction

	// Configuration
	GetConfig() *GameConfig
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return NewEngineWithSeed(config, time.Now().UnixNano())
}

// NewEngineWithSeed creates a new game engine with a fixed random seed for
// deterministic food placement. Used by tests and the self-play analyzer.
func NewEngineWithSeed(config *GameConfig, seed int64) (*GameEngine, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config: config,
		// The per-session lock serializes all access, so an unlocked
		// source is safe here.
		rng: rand.New(rand.NewSource(seed)),
	}
	if _, err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the built-in classic board
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultGameConfig())
	if err != nil {
		// DefaultGameConfig always validates.
		panic(fmt.Sprintf("engine: default config rejected: %v", err))
	}
	return e
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used by tests to force known positions)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Snake) == 0 {
		return fmt.Errorf("state must have a non-empty snake")
	}
	e.state = state
	return nil
}

// Reset reinitializes the simulation from the engine's configuration: a
// single-segment snake centered on the board, heading right, score zero,
// food on a free cell.
func (e *GameEngine) Reset() (*GameState, error) {
	state := &GameState{
		Snake:     []Point{{X: e.config.Width / 2, Y: e.config.Height / 2}},
		Direction: Right,
		Width:     e.config.Width,
		Height:    e.config.Height,
	}
	if err := state.PlaceFood(e.rng); err != nil {
		return nil, fmt.Errorf("failed to place initial food: %w", err)
	}
	e.state = state
	return e.state, nil
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// Tick advances the simulation by one step
func (e *GameEngine) Tick() error {
	return e.state.Step(e.rng)
}

// SetDirection replaces the snake's heading. No reversal validation is
// performed: an immediate 180-degree turn is allowed and ends the game on
// the next tick through the normal self-collision check.
func (e *GameEngine) SetDirection(d Direction) {
	e.state.Direction = d
}

// GetDirection returns the snake's current heading
func (e *GameEngine) GetDirection() Direction {
	return e.state.Direction
}

// AIDirection returns the greedy heuristic's choice of heading without
// advancing the simulation.
func (e *GameEngine) AIDirection() Direction {
	return e.state.ChooseAIDirection()
}

// GetConfig returns the engine's board configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}
