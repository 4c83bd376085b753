package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Load reads and merges configuration from global and project paths.
// Order of precedence (highest to lowest): project config, global
// config, defaults. Missing files are not errors; malformed JSON
// returns an error.
func Load(globalPath, projectPath string) (*LoaderConfig, error) {
	cfg := DefaultConfig()

	if globalPath != "" {
		if err := mergeConfigFile(cfg, globalPath); err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
	}

	if projectPath != "" {
		if err := mergeConfigFile(cfg, projectPath); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	return cfg, nil
}

// LoadDefault loads configuration from conventional XDG paths.
// Global: $XDG_CONFIG_HOME/asyncload/config.json
// Project: .asyncload/config.json (relative to cwd)
func LoadDefault() (*LoaderConfig, error) {
	globalPath, err := xdg.ConfigFile(filepath.Join("asyncload", "config.json"))
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	projectPath := filepath.Join(".asyncload", "config.json")

	return Load(globalPath, projectPath)
}

// mergeConfigFile reads a JSON config file and merges it into base.
// Missing files are silently skipped. Malformed JSON returns an error.
func mergeConfigFile(base *LoaderConfig, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var loaded LoaderConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if loaded.MaxThreads > 0 {
		base.MaxThreads = loaded.MaxThreads
	}
	if loaded.DefaultPriority != 0 {
		base.DefaultPriority = loaded.DefaultPriority
	}
	for key, batch := range loaded.Batches {
		base.Batches[key] = batch
	}

	return nil
}
