// Package websocket provides WebSocket transport for the Snake game server.
//
// The websocket package implements:
//   - Real-time state push to browser clients
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after each mutation
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines managing reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded snapshots of the session's GameState
// wrapped in an envelope:
//
//	{"session_id": "...", "event": "state_update", "game_state": {...}}
//
// Incoming client messages are ignored; clients drive the game through the
// REST API and receive pushes here.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=<id>) when
// establishing the connection. State updates are broadcast only to clients
// connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful tick:
//	hub.BroadcastToSession(sessionID, state)
package websocket
