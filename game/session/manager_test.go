package session

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/geoloco/mappazzone/game/engine"
)

func createTestGame(t *testing.T) *engine.Game {
	t.Helper()
	locations := make([]engine.Location, 0, 30)
	for i := 0; i < 30; i++ {
		locations = append(locations, engine.Location{
			City:      fmt.Sprintf("city-%d", i),
			Longitude: float64(i * 10),
			ID:        i,
			Continent: engine.Europe,
			Capital:   true,
		})
	}
	game, err := engine.NewGame(engine.NewOptions(engine.LanguageEN), []string{"alice", "bob"},
		engine.NewDeck(locations, rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return game
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()

	t.Run("create with custom ID", func(t *testing.T) {
		match, err := manager.Create("test-match", "classic", createTestGame(t))
		if err != nil {
			t.Fatalf("Failed to create match: %v", err)
		}
		if match.ID != "test-match" {
			t.Errorf("Expected match ID 'test-match', got '%s'", match.ID)
		}
		if match.Game == nil {
			t.Error("Expected game to be set")
		}
		if match.PresetID != "classic" {
			t.Errorf("Expected preset 'classic', got '%s'", match.PresetID)
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		match, err := manager.Create("", "classic", createTestGame(t))
		if err != nil {
			t.Fatalf("Failed to create match: %v", err)
		}
		if match.ID == "" {
			t.Error("Expected auto-generated match ID")
		}
		if len(match.ID) != 4 {
			t.Errorf("Expected 4-character match ID, got %d characters", len(match.ID))
		}
	})

	t.Run("duplicate match ID", func(t *testing.T) {
		_, err := manager.Create("test-match", "classic", createTestGame(t))
		if err != ErrMatchAlreadyExists {
			t.Errorf("Expected ErrMatchAlreadyExists, got %v", err)
		}
	})

	t.Run("case-insensitive duplicate check", func(t *testing.T) {
		_, err := manager.Create("TEST-MATCH", "classic", createTestGame(t))
		if err != ErrMatchAlreadyExists {
			t.Errorf("Expected ErrMatchAlreadyExists for case variant, got %v", err)
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	created, _ := manager.Create("get-test", "classic", createTestGame(t))

	t.Run("get existing match", func(t *testing.T) {
		match, err := manager.Get("get-test")
		if err != nil {
			t.Fatalf("Failed to get match: %v", err)
		}
		if match != created {
			t.Error("Expected the same match instance")
		}
	})

	t.Run("get with different case", func(t *testing.T) {
		match, err := manager.Get("GET-TEST")
		if err != nil {
			t.Fatalf("Failed to get match with upper-case ID: %v", err)
		}
		if match != created {
			t.Error("Expected the same match instance")
		}
	})

	t.Run("get non-existent match", func(t *testing.T) {
		_, err := manager.Get("nope")
		if err != ErrMatchNotFound {
			t.Errorf("Expected ErrMatchNotFound, got %v", err)
		}
	})
}

func TestManager_List(t *testing.T) {
	manager := NewManager()

	if len(manager.List()) != 0 {
		t.Error("Expected empty list for new manager")
	}

	for i := 0; i < 3; i++ {
		if _, err := manager.Create(fmt.Sprintf("match-%d", i), "classic", createTestGame(t)); err != nil {
			t.Fatalf("Failed to create match: %v", err)
		}
	}

	matches := manager.List()
	if len(matches) != 3 {
		t.Errorf("Expected 3 matches, got %d", len(matches))
	}
	if manager.Count() != 3 {
		t.Errorf("Expected count 3, got %d", manager.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	manager.Create("delete-test", "classic", createTestGame(t))

	t.Run("delete existing match", func(t *testing.T) {
		if err := manager.Delete("DELETE-TEST"); err != nil {
			t.Fatalf("Failed to delete match: %v", err)
		}
		if _, err := manager.Get("delete-test"); err != ErrMatchNotFound {
			t.Errorf("Expected match to be gone, got %v", err)
		}
	})

	t.Run("delete non-existent match", func(t *testing.T) {
		if err := manager.Delete("delete-test"); err != ErrMatchNotFound {
			t.Errorf("Expected ErrMatchNotFound, got %v", err)
		}
	})
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	match, _ := manager.Create("access-test", "classic", createTestGame(t))
	before := match.LastAccessedAt

	time.Sleep(10 * time.Millisecond)
	if err := manager.UpdateLastAccessed("access-test"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !match.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}

	if err := manager.UpdateLastAccessed("nope"); err != ErrMatchNotFound {
		t.Errorf("Expected ErrMatchNotFound, got %v", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	manager := NewManager()

	fresh, _ := manager.Create("fresh", "classic", createTestGame(t))
	stale, _ := manager.Create("stale", "classic", createTestGame(t))
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := manager.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 match removed, got %d", removed)
	}
	if _, err := manager.Get("stale"); err != ErrMatchNotFound {
		t.Error("Expected the stale match to be removed")
	}
	if _, err := manager.Get(fresh.ID); err != nil {
		t.Errorf("Expected the fresh match to survive: %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	game := createTestGame(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("concurrent-%d", id)
			if _, err := manager.Create(name, "classic", game); err != nil {
				t.Errorf("Create %s: %v", name, err)
				return
			}
			if _, err := manager.Get(strings.ToUpper(name)); err != nil {
				t.Errorf("Get %s: %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	if manager.Count() != 20 {
		t.Errorf("Expected 20 matches, got %d", manager.Count())
	}
}
