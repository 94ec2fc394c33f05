// Package config provides board configuration management for the Snake game
// server.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines a name, a description, and the board dimensions:
//
//	{
//	  "name": "classic",
//	  "description": "Classic 20x20 board",
//	  "width": 20,
//	  "height": 20
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	boardConfig, err := manager.LoadConfig("small")
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for dimension bounds before use; invalid
// files are skipped by ListConfigs and rejected by LoadConfig.
package config
