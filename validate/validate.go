// Command validate provides a small CLI that validates the game data next to
// the repository: option presets in ../presets and the city dataset in
// ../data. It checks:
//   - JSON structure and required fields of every preset
//   - That every preset setting names a known option with a legal value
//   - That the dataset CSV files parse and cross-reference cleanly
//   - Coordinate ranges, duplicate city IDs, and capital availability
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geoloco/mappazzone/game/catalog"
	"github.com/geoloco/mappazzone/game/engine"
)

// Preset mirrors the JSON schema for an option preset.
type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Settings    map[string]any `json:"settings"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file. Every setting
// must name a known option and carry a value the option accepts.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Preset name is empty")
	}

	if preset.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Preset description is empty")
	}

	// Apply every setting against fresh options to catch unknown keys and
	// illegal values the same way the server would at load time.
	opts := engine.NewOptions(engine.LanguageEN)
	for key, value := range preset.Settings {
		if err := opts.Set(engine.OptionKey(key), value); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Setting %q: %v", key, err))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Settings: %d", len(preset.Settings)))
	}

	return result
}

// validateDataset loads the continent and city CSV files from dataDir and
// checks coordinate ranges, duplicate IDs, and that enough capitals exist for
// a default game.
func validateDataset(dataDir string) ValidationResult {
	result := ValidationResult{
		File:   dataDir,
		Valid:  true,
		Errors: []string{},
	}

	locations, err := catalog.LoadDir(dataDir)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to load dataset: %v", err))
		return result
	}

	if len(locations) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Dataset contains no locations")
		return result
	}

	seen := make(map[int]string, len(locations))
	capitals := 0
	missingPopulation := 0

	for _, loc := range locations {
		if loc.Longitude < -180 || loc.Longitude > 180 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: longitude %.4f out of range", loc.City, loc.Longitude))
		}
		if loc.Latitude < -90 || loc.Latitude > 90 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: latitude %.4f out of range", loc.City, loc.Latitude))
		}
		if other, dup := seen[loc.ID]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate city ID %d: %s and %s", loc.ID, other, loc.City))
		}
		seen[loc.ID] = loc.City

		if loc.Capital {
			capitals++
		}
		if loc.Population == 0 {
			missingPopulation++
		}
	}

	// A default game needs the center plus opening hands for at least two
	// players drawn from capitals only.
	defaults := engine.NewOptions(engine.LanguageEN)
	minCapitals := 1 + 2*defaults.Initial()
	if capitals < minCapitals {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Only %d capitals, need at least %d for a default two-player game", capitals, minCapitals))
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Locations: %d", len(locations)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Capitals: %d", capitals))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Missing population: %d", missingPopulation))
	}

	return result
}

// report prints one validation result and returns whether it was valid.
func report(result ValidationResult) bool {
	fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

	if result.Valid {
		fmt.Println("✅ VALID")
		for _, info := range result.Errors {
			fmt.Println("  " + info)
		}
		return true
	}

	fmt.Println("❌ INVALID")
	for _, err := range result.Errors {
		if !strings.HasPrefix(err, "✓") {
			fmt.Println("  ❌ " + err)
		}
	}
	return false
}

// main validates ../presets/*.json and the ../data dataset, printing a
// concise report and exiting with non-zero status if anything is invalid.
func main() {
	presetDir := "../presets"
	dataDir := "../data"

	files, err := filepath.Glob(filepath.Join(presetDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		if !report(validatePreset(file)) {
			allValid = false
		}
	}

	if !report(validateDataset(dataDir)) {
		allValid = false
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets and data are valid!")
	} else {
		fmt.Println("❌ Some files have errors")
		os.Exit(1)
	}
}
