// Package engine provides the core game logic for the Snake game server.
//
// The engine package implements the game mechanics including:
//   - Grid-bounded snake movement and collision detection
//   - Food placement avoiding the snake body
//   - Score tracking and terminal game-over state
//   - A greedy single-step AI heuristic for automated play
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current simulation
// state, while GameConfig defines the board dimensions loaded from JSON
// files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultGameConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Advance the simulation one step
//	if err := gameEngine.Tick(); err != nil {
//		log.Fatal(err)
//	}
//	state := gameEngine.GetState()
//
// Game Rules:
//
// The snake advances one cell per tick in its current direction. Leaving the
// board or running into its own body ends the game. Eating food grows the
// snake by one segment, increments the score, and respawns food on a free
// cell. Once the game is over, every operation is a no-op that preserves the
// final state.
package engine
