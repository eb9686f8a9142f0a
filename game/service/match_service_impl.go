package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/geoloco/mappazzone/game/config"
	"github.com/geoloco/mappazzone/game/engine"
)

// matchServiceImpl implements the MatchService interface
type matchServiceImpl struct {
	matches   MatchManager
	presets   PresetManager
	locations []engine.Location
	mu        sync.RWMutex
}

// NewMatchService creates a new match service over the given location dataset
func NewMatchService(matches MatchManager, presets PresetManager, locations []engine.Location) MatchService {
	return &matchServiceImpl{
		matches:   matches,
		presets:   presets,
		locations: locations,
	}
}

// ParseLanguage maps a request language string to a supported language,
// defaulting to English.
func ParseLanguage(language string) engine.Language {
	switch engine.Language(strings.ToUpper(language)) {
	case engine.LanguageIT:
		return engine.LanguageIT
	default:
		return engine.LanguageEN
	}
}

// CreateMatch creates a new match from a preset
func (s *matchServiceImpl) CreateMatch(ctx context.Context, presetName string, players []string, language string) (*MatchInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load preset
	var preset *config.Preset
	presetID := presetName
	if presetName != "" {
		var err error
		preset, err = s.presets.LoadPreset(presetName)
		if err != nil {
			// Provide helpful error message with available options
			if errors.Is(err, config.ErrPresetNotFound) {
				availablePresets, listErr := s.presets.ListPresets()
				if listErr == nil && len(availablePresets) > 0 {
					var presetIDs []string
					for _, p := range availablePresets {
						presetIDs = append(presetIDs, p.PresetID)
					}
					return nil, fmt.Errorf("preset '%s' not found. Available presets: %v", presetName, presetIDs)
				}
				return nil, fmt.Errorf("preset '%s' not found. Use /api/presets to list available presets", presetName)
			}
			return nil, fmt.Errorf("failed to load preset %s: %w", presetName, err)
		}
	} else {
		preset = s.presets.GetDefault()
		presetID = "default"
	}

	options, err := preset.Options(ParseLanguage(language))
	if err != nil {
		return nil, fmt.Errorf("failed to build options from preset %s: %w", presetID, err)
	}

	game, err := engine.NewGame(options, players, engine.NewDeck(s.locations, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	// Let match manager generate a proper 4-character ID
	match, err := s.matches.Create("", presetID, game)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return s.matchInfo(match), nil
}

// GetMatch retrieves match information
func (s *matchServiceImpl) GetMatch(ctx context.Context, matchID string) (*MatchInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	s.matches.UpdateLastAccessed(matchID)

	return s.matchInfo(match), nil
}

// ListMatches returns all active matches
func (s *matchServiceImpl) ListMatches(ctx context.Context) ([]*MatchInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.matches.List()
	result := make([]*MatchInfo, 0, len(matches))
	for _, match := range matches {
		result = append(result, s.matchInfo(match))
	}
	return result, nil
}

// DeleteMatch removes a match
func (s *matchServiceImpl) DeleteMatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.matches.Delete(matchID)
}

// Place executes a placement turn
func (s *matchServiceImpl) Place(ctx context.Context, matchID, player, city string, x, y int) (*PlaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}
	s.matches.UpdateLastAccessed(matchID)

	p, err := match.Game.Player(player)
	if err != nil {
		return nil, err
	}
	location, err := p.HandLocation(city)
	if err != nil {
		return nil, err
	}

	before := p.Score()
	violations, err := match.Game.Place(p, location, x, y)
	if err != nil {
		return nil, err
	}

	result := &PlaceResult{
		Committed: len(violations) == 0,
		// The hand lost the played city and gained the drawn ones.
		Drawn: p.Score() - before + 1,
		State: s.matchState(match),
	}
	for _, v := range violations {
		result.Violations = append(result.Violations, string(v))
	}
	if reason := match.Game.Gameover(); reason.Over() {
		result.Message = match.Game.Options().GameoverMessage(reason)
	}
	return result, nil
}

// Swap executes a swap turn
func (s *matchServiceImpl) Swap(ctx context.Context, matchID, player, city string) (*SwapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}
	s.matches.UpdateLastAccessed(matchID)

	p, err := match.Game.Player(player)
	if err != nil {
		return nil, err
	}
	location, err := p.HandLocation(city)
	if err != nil {
		return nil, err
	}

	if err := match.Game.Swap(p, location); err != nil {
		return nil, err
	}

	return &SwapResult{
		Discarded: location.City,
		State:     s.matchState(match),
	}, nil
}

// GetState returns the current state of a match
func (s *matchServiceImpl) GetState(ctx context.Context, matchID string) (*MatchState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}
	s.matches.UpdateLastAccessed(matchID)

	return s.matchState(match), nil
}

// GetResults returns the match ranking, best player first
func (s *matchServiceImpl) GetResults(ctx context.Context, matchID string) (*MatchResults, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	reason := match.Game.Gameover()
	results := &MatchResults{
		Over:    reason.Over(),
		Message: match.Game.Options().GameoverMessage(reason),
	}
	if reason.Over() {
		results.Reason = reason.String()
	}
	for i, p := range match.Game.Results() {
		results.Ranking = append(results.Ranking, ResultEntry{
			Position: i + 1,
			Name:     p.Name(),
			Score:    p.Score(),
			Placed:   p.PlacedLocations(),
		})
	}
	return results, nil
}

// ListPresets returns the available option presets
func (s *matchServiceImpl) ListPresets(ctx context.Context) ([]*config.PresetInfo, error) {
	return s.presets.ListPresets()
}

// ListOptions returns every option with its legal values, localized
func (s *matchServiceImpl) ListOptions(ctx context.Context, language string) ([]engine.Option, error) {
	return engine.NewOptions(ParseLanguage(language)).Items(), nil
}

func (s *matchServiceImpl) matchInfo(match *Match) *MatchInfo {
	players := make([]string, 0, len(match.Game.Players()))
	for _, p := range match.Game.Players() {
		players = append(players, p.Name())
	}
	return &MatchInfo{
		ID:             match.ID,
		PresetID:       match.PresetID,
		Players:        players,
		CreatedAt:      match.CreatedAt,
		LastAccessedAt: match.LastAccessedAt,
		State:          s.matchState(match),
	}
}

func (s *matchServiceImpl) matchState(match *Match) *MatchState {
	game := match.Game
	board := game.Board()
	opts := board.Options()

	state := &MatchState{
		CurrentPlayer: game.CurrentPlayer().Name(),
		Rounds:        game.Rounds(),
		DeckSize:      game.Deck().Len(),
		Board: BoardState{
			Size:      opts.Size,
			Tolerance: opts.Tolerance,
		},
	}
	if reason := game.Gameover(); reason.Over() {
		state.Over = true
		state.Reason = reason.String()
		state.Message = game.Options().GameoverMessage(reason)
	}
	for x := 0; x < opts.Size; x++ {
		for y := 0; y < opts.Size; y++ {
			if location, err := board.Get(x, y); err == nil && location != nil {
				state.Board.Cells = append(state.Board.Cells, PlacedCell{X: x, Y: y, Location: *location})
			}
		}
	}
	for _, p := range game.Players() {
		state.Players = append(state.Players, PlayerState{
			Name:   p.Name(),
			Hand:   p.Hand(),
			Score:  p.Score(),
			Placed: p.PlacedLocations(),
		})
	}
	return state
}
