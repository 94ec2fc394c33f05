package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a board configuration specifies
// non-positive or out-of-range dimensions.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// ValidateGameConfig validates a board configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("config validation: dimensions must be positive, got %dx%d: %w",
			config.Width, config.Height, ErrInvalidDimensions)
	}
	if config.Width > MaxBoardSize || config.Height > MaxBoardSize {
		return fmt.Errorf("config validation: dimensions must be at most %dx%d, got %dx%d: %w",
			MaxBoardSize, MaxBoardSize, config.Width, config.Height, ErrInvalidDimensions)
	}

	// A board needs at least one free cell besides the starting snake segment
	// so that food can be placed.
	if config.Width*config.Height < MinBoardSize {
		return fmt.Errorf("config validation: board must have at least %d cells, got %d: %w",
			MinBoardSize, config.Width*config.Height, ErrInvalidDimensions)
	}

	return nil
}

// DefaultGameConfig returns the built-in classic board configuration.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Classic 20x20 board",
		Width:       DefaultBoardWidth,
		Height:      DefaultBoardHeight,
	}
}
