package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/geoloco/mappazzone/game/config"
	"github.com/geoloco/mappazzone/game/engine"
	"github.com/geoloco/mappazzone/game/service"
)

// MockMatchManager implements service.MatchManager for testing
type MockMatchManager struct {
	matches map[string]*service.Match
}

func NewMockMatchManager() *MockMatchManager {
	return &MockMatchManager{
		matches: make(map[string]*service.Match),
	}
}

func (m *MockMatchManager) Create(id, presetID string, game *engine.Game) (*service.Match, error) {
	// Generate ID if empty (mimics real match manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.matches)+1)
	}

	if _, exists := m.matches[id]; exists {
		return nil, errors.New("match already exists")
	}

	match := &service.Match{
		ID:             id,
		Game:           game,
		PresetID:       presetID,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.matches[id] = match
	return match, nil
}

func (m *MockMatchManager) Get(id string) (*service.Match, error) {
	match, exists := m.matches[id]
	if !exists {
		return nil, errors.New("match not found")
	}
	return match, nil
}

func (m *MockMatchManager) List() []*service.Match {
	result := make([]*service.Match, 0, len(m.matches))
	for _, match := range m.matches {
		result = append(result, match)
	}
	return result
}

func (m *MockMatchManager) Delete(id string) error {
	if _, exists := m.matches[id]; !exists {
		return errors.New("match not found")
	}
	delete(m.matches, id)
	return nil
}

func (m *MockMatchManager) UpdateLastAccessed(id string) error {
	if match, exists := m.matches[id]; exists {
		match.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("match not found")
}

// MockPresetManager implements service.PresetManager for testing
type MockPresetManager struct {
	presets map[string]*config.Preset
}

func NewMockPresetManager() *MockPresetManager {
	return &MockPresetManager{
		presets: map[string]*config.Preset{
			"classic": {
				Name:        "Classic",
				Description: "Default rules",
				Settings:    map[string]any{},
			},
			"quick": {
				Name:        "Quick",
				Description: "Short game",
				Settings:    map[string]any{"end rounds": 5, "grid size": 6},
			},
		},
	}
}

func (m *MockPresetManager) LoadPreset(name string) (*config.Preset, error) {
	preset, exists := m.presets[name]
	if !exists {
		return nil, config.ErrPresetNotFound
	}
	return preset, nil
}

func (m *MockPresetManager) ListPresets() ([]*config.PresetInfo, error) {
	var infos []*config.PresetInfo
	for id, preset := range m.presets {
		infos = append(infos, &config.PresetInfo{
			Filename:    id + ".json",
			PresetID:    id,
			Name:        preset.Name,
			Description: preset.Description,
		})
	}
	return infos, nil
}

func (m *MockPresetManager) GetDefault() *config.Preset {
	return m.presets["classic"]
}

func testLocations(n int) []engine.Location {
	locations := make([]engine.Location, 0, n)
	for i := 0; i < n; i++ {
		locations = append(locations, engine.Location{
			City:      fmt.Sprintf("city-%d", i),
			Longitude: float64(i * 3),
			ID:        i,
			Continent: engine.Europe,
			Capital:   true,
		})
	}
	return locations
}

func newTestService() service.MatchService {
	return service.NewMatchService(NewMockMatchManager(), NewMockPresetManager(), testLocations(60))
}

func TestMatchService_CreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("with default preset", func(t *testing.T) {
		svc := newTestService()
		info, err := svc.CreateMatch(ctx, "", []string{"alice", "bob"}, "EN")
		if err != nil {
			t.Fatalf("Failed to create match: %v", err)
		}
		if info.ID == "" {
			t.Error("Expected a match ID")
		}
		if info.PresetID != "default" {
			t.Errorf("Expected preset 'default', got '%s'", info.PresetID)
		}
		if len(info.Players) != 2 {
			t.Errorf("Expected 2 players, got %v", info.Players)
		}
		if info.State == nil || info.State.CurrentPlayer != "alice" {
			t.Errorf("Expected alice to play first, got %+v", info.State)
		}
		// Board carries the center location
		if len(info.State.Board.Cells) != 1 {
			t.Errorf("Expected one placed location, got %d", len(info.State.Board.Cells))
		}
	})

	t.Run("with named preset", func(t *testing.T) {
		svc := newTestService()
		info, err := svc.CreateMatch(ctx, "quick", []string{"alice"}, "EN")
		if err != nil {
			t.Fatalf("Failed to create match: %v", err)
		}
		if info.PresetID != "quick" {
			t.Errorf("Expected preset 'quick', got '%s'", info.PresetID)
		}
		if info.State.Board.Size != 7 {
			t.Errorf("Expected a 7-cell board from the quick preset, got %d", info.State.Board.Size)
		}
	})

	t.Run("unknown preset lists alternatives", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.CreateMatch(ctx, "bogus", []string{"alice"}, "EN")
		if err == nil {
			t.Fatal("Expected error for unknown preset")
		}
		if !strings.Contains(err.Error(), "Available presets") {
			t.Errorf("Expected the error to list available presets, got %v", err)
		}
	})

	t.Run("no players", func(t *testing.T) {
		svc := newTestService()
		if _, err := svc.CreateMatch(ctx, "", nil, "EN"); err == nil {
			t.Error("Expected error for a match with no players")
		}
	})
}

func TestMatchService_GetMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateMatch(ctx, "", []string{"alice", "bob"}, "EN")
	if err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}

	info, err := svc.GetMatch(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to get match: %v", err)
	}
	if info.ID != created.ID {
		t.Errorf("Expected match %s, got %s", created.ID, info.ID)
	}

	if _, err := svc.GetMatch(ctx, "nope"); err == nil {
		t.Error("Expected error for unknown match")
	}
}

func TestMatchService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, _ := svc.CreateMatch(ctx, "", []string{"alice"}, "EN")
	svc.CreateMatch(ctx, "", []string{"bob"}, "EN")

	matches, err := svc.ListMatches(ctx)
	if err != nil {
		t.Fatalf("Failed to list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(matches))
	}

	if err := svc.DeleteMatch(ctx, first.ID); err != nil {
		t.Fatalf("Failed to delete match: %v", err)
	}
	matches, _ = svc.ListMatches(ctx)
	if len(matches) != 1 {
		t.Errorf("Expected 1 match after delete, got %d", len(matches))
	}
}

func TestMatchService_Place(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	info, err := svc.CreateMatch(ctx, "", []string{"alice", "bob"}, "EN")
	if err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}

	// Pick a hand city and a cell on its correct side of the center.
	state := info.State
	hand := state.Players[0].Hand
	center := state.Board.Cells[0]
	city := hand[0]
	x := center.X + 1
	if city.Longitude < center.Location.Longitude {
		x = center.X - 1
	}

	result, err := svc.Place(ctx, info.ID, "alice", city.City, x, center.Y)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if !result.Committed || len(result.Violations) != 0 {
		t.Errorf("Expected committed placement, got %+v", result)
	}
	if result.Drawn != 0 {
		t.Errorf("Expected no draws on a correct placement, got %d", result.Drawn)
	}
	if result.State.CurrentPlayer != "bob" {
		t.Errorf("Expected the turn to pass to bob, got %s", result.State.CurrentPlayer)
	}
	if len(result.State.Board.Cells) != 2 {
		t.Errorf("Expected 2 placed locations, got %d", len(result.State.Board.Cells))
	}

	t.Run("city not in hand", func(t *testing.T) {
		if _, err := svc.Place(ctx, info.ID, "bob", "Atlantis", 0, 0); err == nil {
			t.Error("Expected error for a city outside the hand")
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		if _, err := svc.Place(ctx, info.ID, "carol", city.City, 0, 0); err == nil {
			t.Error("Expected error for an unknown player")
		}
	})
}

func TestMatchService_Swap(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	info, err := svc.CreateMatch(ctx, "", []string{"alice", "bob"}, "EN")
	if err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}

	city := info.State.Players[0].Hand[0].City
	result, err := svc.Swap(ctx, info.ID, "alice", city)
	if err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	if result.Discarded != city {
		t.Errorf("Expected %s discarded, got %s", city, result.Discarded)
	}
	if result.State.CurrentPlayer != "bob" {
		t.Errorf("Expected the turn to pass to bob, got %s", result.State.CurrentPlayer)
	}

	// The swapped city must be gone from alice's hand.
	for _, loc := range result.State.Players[0].Hand {
		if loc.City == city {
			t.Errorf("Expected %s to leave the hand", city)
		}
	}
}

func TestMatchService_GetResults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	info, err := svc.CreateMatch(ctx, "", []string{"alice", "bob"}, "EN")
	if err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}

	results, err := svc.GetResults(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to get results: %v", err)
	}
	if results.Over {
		t.Error("Expected a running match")
	}
	if len(results.Ranking) != 2 {
		t.Fatalf("Expected 2 ranking entries, got %d", len(results.Ranking))
	}
	if results.Ranking[0].Position != 1 || results.Ranking[1].Position != 2 {
		t.Errorf("Expected positions 1 and 2, got %+v", results.Ranking)
	}
}

func TestMatchService_ListPresets(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	presets, err := svc.ListPresets(ctx)
	if err != nil {
		t.Fatalf("Failed to list presets: %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("Expected 2 presets, got %d", len(presets))
	}
}

func TestMatchService_ListOptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	options, err := svc.ListOptions(ctx, "IT")
	if err != nil {
		t.Fatalf("Failed to list options: %v", err)
	}
	if len(options) == 0 {
		t.Fatal("Expected options")
	}
	if options[0].Name != "Dimensione mappa" {
		t.Errorf("Expected Italian labels, got %q", options[0].Name)
	}

	options, _ = svc.ListOptions(ctx, "unknown")
	if options[0].Name != "Board size" {
		t.Errorf("Expected English fallback, got %q", options[0].Name)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want engine.Language
	}{
		{"EN", engine.LanguageEN},
		{"en", engine.LanguageEN},
		{"IT", engine.LanguageIT},
		{"it", engine.LanguageIT},
		{"", engine.LanguageEN},
		{"fr", engine.LanguageEN},
	}
	for _, tt := range tests {
		if got := service.ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
