// Package service provides the business logic layer for the Snake game server.
//
// The service package implements:
//   - Multi-session game management
//   - Direction, tick, and AI-move processing
//   - Leaderboard submission and retrieval
//   - Board configuration loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages board configuration loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation and orchestration. Each
// session maintains its own engine instance with independent state, guarded
// by its own lock; at most one mutation is in flight per session at a time
// while unrelated sessions proceed concurrently.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, leaderboard.NewBoard())
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive the game
//	gameService.SetDirection(ctx, sessionInfo.ID, engine.Up)
//	result, err := gameService.Tick(ctx, sessionInfo.ID)
//
// The caller drives the simulation: the service never schedules ticks on its
// own. Browser clients and the AI tools call Tick (or AIMove, which selects a
// heading and ticks once) at whatever cadence they choose.
package service
