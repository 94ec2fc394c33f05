// Package api provides HTTP REST API handlers for the Snake game server.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Leaderboard submission and retrieval
//   - Board configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving for the browser client
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"config_id": "..."})
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/direction - Change heading ({"direction": "up"})
//   - POST /api/sessions/{id}/tick - Advance the simulation one step
//   - POST /api/sessions/{id}/ai-move - Let the greedy AI pick a heading and tick
//   - POST /api/sessions/{id}/reset - Restart the game
//
// Leaderboard:
//   - GET /api/leaderboard - Current top-10
//   - POST /api/leaderboard - Submit score ({"name": "...", "score": 3})
//
// Configuration:
//   - GET /api/configs - List available board configurations
//   - POST /api/configs - Create a board configuration
//   - GET /api/configs/{name} - Get a board configuration
//
// The server never advances games on its own; clients call tick (or ai-move)
// at their chosen cadence and receive pushed state over /ws.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
