package service

import (
	"time"

	"github.com/geoloco/mappazzone/game/engine"
)

// MatchInfo contains match metadata and current state
type MatchInfo struct {
	ID             string      `json:"id"`
	PresetID       string      `json:"preset_id"`
	Players        []string    `json:"players"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	State          *MatchState `json:"state"`
}

// MatchState is a snapshot of a running game
type MatchState struct {
	CurrentPlayer string        `json:"current_player"`
	Rounds        int           `json:"rounds"`
	Over          bool          `json:"over"`
	Reason        string        `json:"reason,omitempty"`
	Message       string        `json:"message,omitempty"`
	Board         BoardState    `json:"board"`
	Players       []PlayerState `json:"players"`
	DeckSize      int           `json:"deck_size"`
}

// BoardState describes the board and its placed locations
type BoardState struct {
	Size      int          `json:"size"`
	Tolerance float64      `json:"tolerance"`
	Cells     []PlacedCell `json:"cells"`
}

// PlacedCell is one occupied board cell
type PlacedCell struct {
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Location engine.Location `json:"location"`
}

// PlayerState describes one player mid-game
type PlayerState struct {
	Name   string            `json:"name"`
	Hand   []engine.Location `json:"hand"`
	Score  int               `json:"score"`
	Placed int               `json:"placed"`
}

// PlaceResult is the outcome of a placement turn
type PlaceResult struct {
	Committed  bool        `json:"committed"`
	Violations []string    `json:"violations,omitempty"`
	Drawn      int         `json:"drawn"`
	Message    string      `json:"message,omitempty"`
	State      *MatchState `json:"state"`
}

// SwapResult is the outcome of a swap turn
type SwapResult struct {
	Discarded string      `json:"discarded"`
	State     *MatchState `json:"state"`
}

// MatchResults is the final (or current) ranking of a match
type MatchResults struct {
	Over    bool          `json:"over"`
	Reason  string        `json:"reason,omitempty"`
	Message string        `json:"message,omitempty"`
	Ranking []ResultEntry `json:"ranking"`
}

// ResultEntry is one row of the ranking, best first
type ResultEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Placed   int    `json:"placed"`
}
