package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/geoloco/mappazzone/game/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset is a named bundle of option settings applied on top of the engine
// defaults.
type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Settings    map[string]any `json:"settings"`
}

// Options builds a game configuration in the given language from the engine
// defaults plus the preset's settings.
func (p *Preset) Options(lang engine.Language) (*engine.Options, error) {
	options := engine.NewOptions(lang)
	for key, value := range p.Settings {
		if err := options.Set(engine.OptionKey(key), value); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// PresetInfo describes an available preset for listings
type PresetInfo struct {
	Filename    string `json:"filename"`
	PresetID    string `json:"preset_id"` // This is the identifier to use for match creation
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Manager handles preset loading and caching
type Manager struct {
	presetDir     string
	defaultPreset *Preset
	presets       map[string]*Preset
	mu            sync.RWMutex
}

// NewManager creates a new preset manager
func NewManager(presetDir string) (*Manager, error) {
	// Ensure preset directory exists
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*Preset),
	}

	if err := m.loadDefaultPreset(); err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}

	return m, nil
}

// LoadPreset loads a preset by name
func (m *Manager) LoadPreset(name string) (*Preset, error) {
	m.mu.RLock()
	// Check cache first
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	// Add .json extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	presetPath := filepath.Join(m.presetDir, filename)

	data, err := os.ReadFile(presetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	// Validate every setting against the engine's legal values
	if _, err := preset.Options(engine.LanguageEN); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	// Cache the preset
	m.presets[name] = &preset
	return &preset, nil
}

// ListPresets returns information about all available presets
func (m *Manager) ListPresets() ([]*PresetInfo, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var presets []*PresetInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		// Remove .json extension for preset name
		name := strings.TrimSuffix(entry.Name(), ".json")

		// Try to load the preset to get details
		preset, err := m.LoadPreset(name)
		if err != nil {
			// Skip invalid presets
			continue
		}

		presets = append(presets, &PresetInfo{
			Filename:    entry.Name(),
			PresetID:    name,
			Name:        preset.Name,
			Description: preset.Description,
		})
	}

	return presets, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	preset, err := m.LoadPreset(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultPreset = preset
	return nil
}

// RefreshCache reloads all cached presets from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clear cache
	m.presets = make(map[string]*Preset)

	return m.loadDefaultPreset()
}

// loadDefaultPreset loads the default preset
func (m *Manager) loadDefaultPreset() error {
	// Try to load classic.json as default
	preset, err := m.LoadPreset("classic")
	if err != nil {
		// Try to load the first available preset
		presets, listErr := m.ListPresets()
		if listErr != nil || len(presets) == 0 {
			// Fall back to the engine defaults
			m.defaultPreset = m.createMinimalPreset()
			return nil
		}

		preset, err = m.LoadPreset(presets[0].PresetID)
		if err != nil {
			m.defaultPreset = m.createMinimalPreset()
			return nil
		}
	}

	m.defaultPreset = preset
	return nil
}

// SaveConfig saves a preset to disk
func (m *Manager) SaveConfig(name string, preset *Preset) error {
	// Validate before saving
	if _, err := preset.Options(engine.LanguageEN); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	presetPath := filepath.Join(m.presetDir, filename)
	if err := os.WriteFile(presetPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presets[name] = preset

	return nil
}

// createMinimalPreset builds a preset with no overrides, matching the engine
// defaults.
func (m *Manager) createMinimalPreset() *Preset {
	return &Preset{
		Name:        "Classic",
		Description: "Default rules.",
		Settings:    map[string]any{},
	}
}
