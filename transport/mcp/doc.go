// Package mcp provides Model Context Protocol server implementation for the game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for match operations
//   - Match-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - match_state: Get current match state with board visualization
//   - place: Place a hand city on a board cell
//   - swap: Exchange a hand city for a fresh draw
//   - match_results: Get the ranking, best player first
//   - create_match: Create new match with preset and player selection
//   - get_match: Get specific match details
//   - list_matches: List all active matches
//   - list_presets: List available option presets
//   - game_instructions: Get comprehensive game instructions and rules
//
// Architecture:
//
// The MCP layer is a thin client: every tool call is proxied to the REST
// API server, so MCP agents and HTTP clients always observe the same
// state. The client holds no game state of its own.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play matches
//   - Reason about geography before placing cities
//   - Manage multiple concurrent matches
//   - Spectate and analyze running games
package mcp
