package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "classic.json",
		`{"name": "classic", "description": "Classic board", "width": 20, "height": 20}`)

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Expected valid config, got errors: %v", result.Errors)
	}

	joined := strings.Join(result.Errors, "\n")
	for _, info := range []string{"✓ Name: classic", "✓ Board: 20x20", "✓ Spawn: (10,10)"} {
		if !strings.Contains(joined, info) {
			t.Errorf("Expected %q in info output, got: %s", info, joined)
		}
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "missing.json"))

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "broken.json", `{not json`)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for broken JSON")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "noname.json", `{"width": 10, "height": 10}`)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for missing name")
	}
}

func TestValidateConfig_BadDimensions(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"zero.json":     `{"name": "zero", "width": 0, "height": 10}`,
		"negative.json": `{"name": "negative", "width": 10, "height": -1}`,
		"tiny.json":     `{"name": "tiny", "width": 1, "height": 1}`,
		"huge.json":     `{"name": "huge", "width": 500, "height": 500}`,
	}

	for name, content := range cases {
		path := writeConfig(t, dir, name, content)
		result := validateConfig(path)
		if result.Valid {
			t.Errorf("%s: expected invalid result, got valid", name)
		}
	}
}

func TestValidateConfig_SmallestPlayableBoard(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "minimal.json", `{"name": "minimal", "width": 2, "height": 1}`)

	result := validateConfig(path)

	if !result.Valid {
		t.Errorf("Expected 2x1 board to be valid, got errors: %v", result.Errors)
	}
}
