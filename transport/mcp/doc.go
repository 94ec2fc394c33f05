// Package mcp provides a Model Context Protocol interface for the snake
// game server.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for all game operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - delete_session: Delete a session
//   - game_state: Get current game state with board rendering
//   - set_direction: Point the snake in a direction
//   - tick: Advance the game by one step
//   - ai_move: Heuristic direction choice plus one tick
//   - reset_game: Reset game to initial state
//   - leaderboard: Show the top scores
//   - submit_score: Submit a score to the leaderboard
//   - list_configs: List available board configurations
//   - game_instructions: Get game rules and usage guidance
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// The client is a thin proxy: every tool call is translated into a REST
// API request against the configured base URL, so MCP and HTTP clients
// always observe the same state.
package mcp
