// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"

	"fitnote/local-app/pkg/model"
)

// DefaultPath is where the configuration file lives unless overridden.
const DefaultPath = "./data/config.json"

// ConfigLoad loads the configuration from the JSON file at path, creating
// a default file on first run. Environment variables (FITNOTE_*) override
// whatever the file contains.
func ConfigLoad(path string) (*model.Config, error) {
	// Ensure the data directory exists
	dataDir := filepath.Dir(path)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if the config file exists, if not create a default one
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := ConfigSave(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Read and parse the existing config file
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &model.Config{}
	if err := json.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Fill in anything an older config file is missing
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "sqlite"
	}
	if cfg.GuestScope == "" {
		cfg.GuestScope = "guest"
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigSave saves the provided configuration to the JSON file at path.
func ConfigSave(path string, cfg *model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

func defaultConfig() *model.Config {
	return &model.Config{
		StorageDriver: "sqlite",
		StorageDir:    "./data",
		StorageFile:   "fitnote.db",
		LogLevel:      "info",
		LogFile:       "./logs/fitnote.log",
		GuestScope:    "guest",
	}
}

// applyEnv overlays FITNOTE_* environment variables onto cfg. Variables
// that are not set leave the existing values untouched.
func applyEnv(cfg *model.Config) error {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return fmt.Errorf("error applying environment overrides: %w", err)
	}
	return nil
}
