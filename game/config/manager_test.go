package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/geoloco/mappazzone/game/engine"
)

func createValidPreset() *Preset {
	return &Preset{
		Name:        "Test Preset",
		Description: "Test preset",
		Settings: map[string]any{
			"grid size":  6,
			"end rounds": 10,
		},
	}
}

func writePresetFile(t *testing.T, dir, name string, preset *Preset) {
	t.Helper()
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal preset: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	path := filepath.Join(dir, filename)
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("Failed to write preset file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()

		defaultPreset := createValidPreset()
		defaultPreset.Name = "Classic"
		writePresetFile(t, dir, "classic", defaultPreset)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("missing default preset", func(t *testing.T) {
		dir := t.TempDir()

		manager, err := NewManager(dir)
		if err != nil {
			t.Errorf("NewManager should succeed even without preset files, got error: %v", err)
		}
		if manager == nil {
			t.Fatal("Expected manager to be created")
		}

		// Should have created a minimal default matching the engine defaults
		defaultPreset := manager.GetDefault()
		if defaultPreset == nil {
			t.Fatal("Expected default preset to be available")
		}
		options, err := defaultPreset.Options(engine.LanguageEN)
		if err != nil {
			t.Fatalf("Default preset does not build options: %v", err)
		}
		if options.Board().Size != 10 {
			t.Errorf("Expected engine default grid size, got %d", options.Board().Size)
		}
	})
}

func TestManager_LoadPreset(t *testing.T) {
	dir := t.TempDir()

	defaultPreset := createValidPreset()
	defaultPreset.Name = "Classic"
	writePresetFile(t, dir, "classic", defaultPreset)

	quickPreset := createValidPreset()
	quickPreset.Name = "Quick"
	quickPreset.Settings["end rounds"] = 5
	writePresetFile(t, dir, "quick", quickPreset)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing preset", func(t *testing.T) {
		preset, err := manager.LoadPreset("quick")
		if err != nil {
			t.Fatalf("Failed to load preset: %v", err)
		}
		if preset.Name != "Quick" {
			t.Errorf("Expected preset name 'Quick', got '%s'", preset.Name)
		}
		options, err := preset.Options(engine.LanguageEN)
		if err != nil {
			t.Fatalf("Failed to build options: %v", err)
		}
		value, err := options.Get(engine.OptEndRounds)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if value != 5 {
			t.Errorf("Expected end rounds 5, got %v", value)
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		preset, err := manager.LoadPreset("quick.json")
		if err != nil {
			t.Fatalf("Failed to load preset with extension: %v", err)
		}
		if preset.Name != "Quick" {
			t.Errorf("Expected preset name 'Quick', got '%s'", preset.Name)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		preset1, _ := manager.LoadPreset("quick")
		preset2, err := manager.LoadPreset("quick")
		if err != nil {
			t.Fatalf("Failed to load preset from cache: %v", err)
		}

		// Should be the same pointer (cached)
		if preset1 != preset2 {
			t.Error("Expected preset to be loaded from cache")
		}
	})

	t.Run("load non-existent preset", func(t *testing.T) {
		_, err := manager.LoadPreset("non-existent")
		if err != ErrPresetNotFound {
			t.Errorf("Expected ErrPresetNotFound, got %v", err)
		}
	})

	t.Run("load invalid preset", func(t *testing.T) {
		// Grid size 7 is not a legal choice
		invalidData := []byte(`{"name": "Invalid", "settings": {"grid size": 7}}`)
		err := os.WriteFile(filepath.Join(dir, "invalid.json"), invalidData, 0644)
		if err != nil {
			t.Fatalf("Failed to write invalid preset: %v", err)
		}

		_, err = manager.LoadPreset("invalid")
		if err == nil {
			t.Error("Expected error for invalid preset")
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		malformedData := []byte(`{"name": "Malformed", invalid json}`)
		err := os.WriteFile(filepath.Join(dir, "malformed.json"), malformedData, 0644)
		if err != nil {
			t.Fatalf("Failed to write malformed preset: %v", err)
		}

		_, err = manager.LoadPreset("malformed")
		if err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_GetDefault(t *testing.T) {
	dir := t.TempDir()

	defaultPreset := createValidPreset()
	defaultPreset.Name = "Classic Rules"
	writePresetFile(t, dir, "classic", defaultPreset)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	preset := manager.GetDefault()
	if preset == nil {
		t.Fatal("Expected default preset to be non-nil")
	}
	if preset.Name != "Classic Rules" {
		t.Errorf("Expected default preset name 'Classic Rules', got '%s'", preset.Name)
	}
}

func TestManager_ListPresets(t *testing.T) {
	dir := t.TempDir()

	presets := []struct {
		filename string
		name     string
	}{
		{"classic", "Classic"},
		{"quick", "Quick"},
		{"marathon", "Marathon"},
		{"strict", "Strict"},
	}

	for _, p := range presets {
		preset := createValidPreset()
		preset.Name = p.name
		writePresetFile(t, dir, p.filename, preset)
	}

	// Also add a non-JSON file that should be ignored
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	presetList, err := manager.ListPresets()
	if err != nil {
		t.Fatalf("Failed to list presets: %v", err)
	}
	if len(presetList) != 4 {
		t.Errorf("Expected 4 presets, got %d", len(presetList))
	}

	foundPresets := make(map[string]bool)
	for _, info := range presetList {
		foundPresets[info.Name] = true
	}
	for _, p := range presets {
		if !foundPresets[p.name] {
			t.Errorf("Preset '%s' not found in list", p.name)
		}
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	writePresetFile(t, dir, "classic", createValidPreset())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	saved := &Preset{
		Name:        "Saved",
		Description: "Saved preset",
		Settings:    map[string]any{"may swap": false},
	}
	if err := manager.SaveConfig("saved", saved); err != nil {
		t.Fatalf("Failed to save preset: %v", err)
	}

	loaded, err := manager.LoadPreset("saved")
	if err != nil {
		t.Fatalf("Failed to load saved preset: %v", err)
	}
	if loaded.Name != "Saved" {
		t.Errorf("Expected preset name 'Saved', got '%s'", loaded.Name)
	}

	t.Run("invalid preset is rejected", func(t *testing.T) {
		bad := &Preset{
			Name:     "Bad",
			Settings: map[string]any{"grid size": 999},
		}
		if err := manager.SaveConfig("bad", bad); err == nil {
			t.Error("Expected error saving an invalid preset")
		}
	})
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()

	writePresetFile(t, dir, "classic", createValidPreset())
	for i := 1; i <= 5; i++ {
		preset := createValidPreset()
		preset.Name = "Preset" + string(rune('0'+i))
		writePresetFile(t, dir, "preset"+string(rune('0'+i)), preset)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errors := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			presetName := "preset" + string(rune('0'+((id%5)+1)))
			_, err := manager.LoadPreset(presetName)
			if err != nil {
				errors <- err
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	if manager.Count() < 5 {
		t.Errorf("Expected at least 5 presets in cache, got %d", manager.Count())
	}
}

// Add missing test-only methods to Manager

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.presets)
}
