package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/geoloco/mappazzone/game/engine"
	"github.com/geoloco/mappazzone/game/service"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
)

// Manager handles match lifecycle
type Manager struct {
	matches map[string]*service.Match
	mu      sync.RWMutex
}

// NewManager creates a new match manager
func NewManager() *Manager {
	return &Manager{
		matches: make(map[string]*service.Match),
	}
}

// Create creates a new match with the given ID and game. An empty ID means
// the manager generates one.
func (m *Manager) Create(id, presetID string, game *engine.Game) (*service.Match, error) {
	if id == "" {
		id = m.generateMatchID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Check if match already exists (case-insensitive)
	if _, exists := m.matches[strings.ToLower(id)]; exists {
		return nil, ErrMatchAlreadyExists
	}

	match := &service.Match{
		ID:             id,
		Game:           game,
		PresetID:       presetID,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.matches[strings.ToLower(id)] = match
	return match, nil
}

// Get retrieves a match by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	match, exists := m.matches[strings.ToLower(id)]
	if !exists {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// List returns all active matches
func (m *Manager) List() []*service.Match {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Match, 0, len(m.matches))
	for _, match := range m.matches {
		result = append(result, match)
	}
	return result
}

// Delete removes a match
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	if _, exists := m.matches[lowerID]; !exists {
		return ErrMatchNotFound
	}
	delete(m.matches, lowerID)
	return nil
}

// UpdateLastAccessed updates the last accessed time for a match
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	match, exists := m.matches[strings.ToLower(id)]
	if !exists {
		return ErrMatchNotFound
	}
	match.LastAccessedAt = time.Now()
	return nil
}

// CleanupExpiredSessions removes matches that haven't been accessed in the
// given duration and returns how many were removed
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, match := range m.matches {
		if match.LastAccessedAt.Before(cutoff) {
			delete(m.matches, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of active matches
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}

// generateMatchID generates a random 4-character match ID
func (m *Manager) generateMatchID() string {
	// 2 random bytes make 4 hex characters
	bytes := make([]byte, 2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
