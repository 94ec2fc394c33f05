// Package session provides session management for the Snake game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Concurrent access control
//
// Core Types:
//
// Manager is the session registry handling all session operations. Session
// (defined in the service package) represents an individual game with its own
// engine instance and metadata like creation time and last access time.
//
// Session Identifiers:
//
// Sessions use UUID v4 identifiers. The manager ensures IDs are unique and
// treats lookups case-insensitively.
//
// Concurrency:
//
// The registry guards its map with its own lock, while each session carries
// an independent mutation lock. Operations on different sessions never
// serialize against each other; only registry insert/lookup/delete paths
// share the registry lock.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
package session
