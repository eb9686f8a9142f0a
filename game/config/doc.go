// Package config provides option preset management for the game server.
//
// The config package handles:
//   - Loading option presets from JSON files
//   - Preset validation against the engine's legal option values
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the presets directory. Each preset
// carries a display name, a description, and a settings object mapping
// option keys to values, for example:
//
//	{
//	  "name": "Quick match",
//	  "description": "Small board, short game.",
//	  "settings": {
//	    "grid size": 6,
//	    "end rounds": 10,
//	    "capitals only": true
//	  }
//	}
//
// Settings are applied on top of the engine defaults, so a preset only
// lists the options it changes. Every value is validated against the
// option's legal choices when the preset is loaded.
//
// Usage:
//
//	manager, err := config.NewManager("presets")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific preset
//	preset, err := manager.LoadPreset("quick")
//
//	// Turn it into a game configuration
//	options, err := preset.Options(engine.LanguageEN)
//
//	// List available presets
//	presets, err := manager.ListPresets()
package config
