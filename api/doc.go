// Package api provides the REST API server for the game.
//
// The API exposes match management, per-turn operations, and configuration
// over clean REST routes backed by gorilla/mux:
//
//	POST   /api/matches               create a match
//	GET    /api/matches               list matches (sort, order, limit)
//	GET    /api/matches/{id}          match info
//	DELETE /api/matches/{id}          delete a match
//	GET    /api/matches/{id}/state    current state snapshot
//	POST   /api/matches/{id}/place    place a city on the board
//	POST   /api/matches/{id}/swap     swap a hand city for a fresh draw
//	GET    /api/matches/{id}/results  ranking, best player first
//	GET    /api/presets               available option presets
//	GET    /api/options               every option with its legal values
//	GET    /ws                        WebSocket state stream (match parameter)
//	GET    /health                    health check
//
// Turn endpoints broadcast the resulting state to the match's WebSocket
// spectators. All responses are JSON; errors use {"error": message}.
package api
