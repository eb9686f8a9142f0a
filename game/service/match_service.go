package service

import (
	"context"
	"time"

	"github.com/geoloco/mappazzone/game/config"
	"github.com/geoloco/mappazzone/game/engine"
)

// MatchService defines all game-related operations
type MatchService interface {
	// Match Management
	CreateMatch(ctx context.Context, presetName string, players []string, language string) (*MatchInfo, error)
	GetMatch(ctx context.Context, matchID string) (*MatchInfo, error)
	ListMatches(ctx context.Context) ([]*MatchInfo, error)
	DeleteMatch(ctx context.Context, matchID string) error

	// Turn Operations
	Place(ctx context.Context, matchID, player, city string, x, y int) (*PlaceResult, error)
	Swap(ctx context.Context, matchID, player, city string) (*SwapResult, error)

	// Match State
	GetState(ctx context.Context, matchID string) (*MatchState, error)
	GetResults(ctx context.Context, matchID string) (*MatchResults, error)

	// Configuration
	ListPresets(ctx context.Context) ([]*config.PresetInfo, error)
	ListOptions(ctx context.Context, language string) ([]engine.Option, error)
}

// MatchManager defines match storage operations
type MatchManager interface {
	Create(id, presetID string, game *engine.Game) (*Match, error)
	Get(id string) (*Match, error)
	List() []*Match
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// PresetManager handles option preset loading
type PresetManager interface {
	LoadPreset(name string) (*config.Preset, error)
	ListPresets() ([]*config.PresetInfo, error)
	GetDefault() *config.Preset
}

// Match represents an active game
type Match struct {
	ID             string
	Game           *engine.Game
	PresetID       string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
