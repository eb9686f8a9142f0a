// Package session provides in-memory match lifecycle management.
//
// The session package handles:
//   - Match creation with generated or caller-supplied IDs
//   - Case-insensitive match lookup
//   - Match deletion and expiry cleanup
//   - Last-accessed tracking
//
// Match IDs:
//
// Generated IDs are 4 hexadecimal characters, short enough to share between
// players out of band. Lookups are case-insensitive so a shouted "A3F0" and
// a typed "a3f0" find the same match.
//
// Usage:
//
//	manager := session.NewManager()
//
//	match, err := manager.Create("", "classic", game)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve it later
//	match, err = manager.Get(match.ID)
//
//	// Periodically drop abandoned matches
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
//
// Matches live only in memory: a server restart forgets them.
package session
