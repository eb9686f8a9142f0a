// Package websocket provides real-time match state broadcasting.
//
// The hub tracks connected clients per match and pushes a state snapshot to
// every spectator whenever a turn is played. Clients connect through the
// REST server's /ws endpoint with a match query parameter; the connection
// is read-only, incoming messages are ignored beyond keepalive handling.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// After a turn
//	hub.BroadcastToMatch(matchID, state)
package websocket
