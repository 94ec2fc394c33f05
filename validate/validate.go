// Command validate provides a small CLI that validates board configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions (positive, within the engine's supported range)
//   - That the board has room for the snake and at least one food cell
//   - That the centered spawn point lies inside the board
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Board size limits, kept in sync with the engine package.
const (
	minBoardArea = 2
	maxBoardSize = 100
)

// Config mirrors the JSON schema for a board configuration.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
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

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	if config.Width <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("width must be positive, got %d", config.Width))
	}
	if config.Height <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("height must be positive, got %d", config.Height))
	}

	if config.Width > maxBoardSize || config.Height > maxBoardSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("board %dx%d exceeds maximum dimension %d", config.Width, config.Height, maxBoardSize))
	}

	// The snake occupies one cell at spawn and the food needs a free cell.
	if config.Width > 0 && config.Height > 0 && config.Width*config.Height < minBoardArea {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("board %dx%d has no room for both snake and food", config.Width, config.Height))
	}

	// Spawn is at the board center; verify it falls inside the board.
	if result.Valid {
		spawnX, spawnY := config.Width/2, config.Height/2
		if spawnX < 0 || spawnX >= config.Width || spawnY < 0 || spawnY >= config.Height {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("spawn point (%d,%d) outside board", spawnX, spawnY))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		if config.Description != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Description: %s", config.Description))
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d cells)", config.Width, config.Height, config.Width*config.Height))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Spawn: (%d,%d)", config.Width/2, config.Height/2))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
