// Package service provides the business logic layer for the game server.
//
// The service package implements:
//   - Multi-match game management
//   - Preset management and loading
//   - Turn processing and validation
//   - Match lifecycle management
//
// Core Interfaces:
//
// MatchService is the main service interface providing high-level game
// operations. MatchManager handles match creation, retrieval, and lifecycle.
// PresetManager manages option preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing match isolation, preset management, and
// business logic orchestration. Each match maintains its own game engine
// instance with independent state.
//
// Usage:
//
//	matchMgr := session.NewManager()
//	presetMgr, _ := config.NewManager("presets")
//	matchService := service.NewMatchService(matchMgr, presetMgr, locations)
//
//	// Create a new match
//	info, err := matchService.CreateMatch(ctx, "classic", []string{"alice", "bob"}, "EN")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play a turn
//	result, err := matchService.Place(ctx, info.ID, "alice", "Rome", 5, 3)
//
// Match Management:
//
// Matches are identified by unique 4-character IDs and maintain independent
// game state. Multiple matches can run concurrently with different presets.
// Matches track creation time and last access time for cleanup.
package service
