package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestValidatePreset_ValidPreset(t *testing.T) {
	validPreset := `{
		"name": "Test Preset",
		"description": "Test rules",
		"settings": {
			"grid size": 8,
			"end rounds": 10,
			"capitals only": false,
			"tolerance": 1.0
		}
	}`

	path := writeTempFile(t, t.TempDir(), "test.json", validPreset)

	result := validatePreset(path)
	if !result.Valid {
		t.Errorf("Expected valid preset, but got errors: %v", result.Errors)
	}

	if result.File != "test.json" {
		t.Errorf("Expected file name test.json, got %s", result.File)
	}
}

func TestValidatePreset_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "bad.json", `{"name": "test", invalid json}`)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to bad JSON")
	}

	if !anyContains(result.Errors, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidatePreset_MissingFile(t *testing.T) {
	result := validatePreset("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	if !anyContains(result.Errors, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidatePreset_UnknownSetting(t *testing.T) {
	preset := `{
		"name": "Test",
		"description": "Test",
		"settings": {
			"warp speed": true
		}
	}`

	path := writeTempFile(t, t.TempDir(), "unknown.json", preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to unknown setting")
	}

	if !anyContains(result.Errors, "warp speed") {
		t.Errorf("Expected the unknown key in the errors, got: %v", result.Errors)
	}
}

func TestValidatePreset_IllegalValue(t *testing.T) {
	preset := `{
		"name": "Test",
		"description": "Test",
		"settings": {
			"grid size": 7
		}
	}`

	path := writeTempFile(t, t.TempDir(), "illegal.json", preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to illegal grid size")
	}

	if !anyContains(result.Errors, "grid size") {
		t.Errorf("Expected the rejected key in the errors, got: %v", result.Errors)
	}
}

func TestValidatePreset_MissingName(t *testing.T) {
	preset := `{
		"description": "Test",
		"settings": {}
	}`

	path := writeTempFile(t, t.TempDir(), "noname.json", preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to empty name")
	}

	if !anyContains(result.Errors, "name is empty") {
		t.Error("Expected 'name is empty' error")
	}
}

func writeTestDataset(t *testing.T, capitals int) string {
	t.Helper()
	dir := t.TempDir()

	continents := "iso3,continent,code\nTST,Europe,EU\n"
	writeTempFile(t, dir, "continents.csv", continents)

	var sb strings.Builder
	sb.WriteString("city,city_ascii,lat,lng,country,iso2,iso3,capital,population,id\n")
	for i := 0; i < capitals; i++ {
		sb.WriteString(fmt.Sprintf("City%d,City%d,%d.0,%d.0,Testland,TS,TST,primary,1000,%d\n",
			i, i, i%80, i%170, i+1))
	}
	writeTempFile(t, dir, "worldcities.csv", sb.String())

	return dir
}

func TestValidateDataset_Valid(t *testing.T) {
	dir := writeTestDataset(t, 10)

	result := validateDataset(dir)
	if !result.Valid {
		t.Errorf("Expected valid dataset, but got errors: %v", result.Errors)
	}
}

func TestValidateDataset_MissingDir(t *testing.T) {
	result := validateDataset("/non/existent/data")
	if result.Valid {
		t.Error("Expected invalid result for missing dataset directory")
	}

	if !anyContains(result.Errors, "Failed to load dataset") {
		t.Error("Expected 'Failed to load dataset' error")
	}
}

func TestValidateDataset_TooFewCapitals(t *testing.T) {
	dir := writeTestDataset(t, 3)

	result := validateDataset(dir)
	if result.Valid {
		t.Error("Expected invalid dataset due to too few capitals")
	}

	if !anyContains(result.Errors, "capitals") {
		t.Errorf("Expected a capitals error, got: %v", result.Errors)
	}
}

func TestValidateDataset_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "continents.csv", "iso3,continent,code\nTST,Europe,EU\n")
	cities := "city,city_ascii,lat,lng,country,iso2,iso3,capital,population,id\n" +
		"Alpha,Alpha,10.0,10.0,Testland,TS,TST,primary,1000,7\n" +
		"Beta,Beta,20.0,20.0,Testland,TS,TST,primary,1000,7\n"
	writeTempFile(t, dir, "worldcities.csv", cities)

	result := validateDataset(dir)
	if result.Valid {
		t.Error("Expected invalid dataset due to duplicate city IDs")
	}

	if !anyContains(result.Errors, "Duplicate city ID") {
		t.Errorf("Expected 'Duplicate city ID' error, got: %v", result.Errors)
	}
}

func TestValidateDataset_CoordinateRange(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "continents.csv", "iso3,continent,code\nTST,Europe,EU\n")
	var sb strings.Builder
	sb.WriteString("city,city_ascii,lat,lng,country,iso2,iso3,capital,population,id\n")
	sb.WriteString("Nowhere,Nowhere,95.0,200.0,Testland,TS,TST,primary,1000,1\n")
	for i := 0; i < 8; i++ {
		sb.WriteString(fmt.Sprintf("City%d,City%d,%d.0,%d.0,Testland,TS,TST,primary,1000,%d\n",
			i, i, i, i, i+2))
	}
	writeTempFile(t, dir, "worldcities.csv", sb.String())

	result := validateDataset(dir)
	if result.Valid {
		t.Error("Expected invalid dataset due to out-of-range coordinates")
	}

	if !anyContains(result.Errors, "longitude") || !anyContains(result.Errors, "latitude") {
		t.Errorf("Expected coordinate range errors, got: %v", result.Errors)
	}
}

// Helper to check if any error message contains a substring
func anyContains(errors []string, substr string) bool {
	for _, err := range errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}
