package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PlayerFile is the file name searched for in the config directories.
const PlayerFile = "player.yaml"

// LoadPlayer loads the player configuration.
// Search order: customPath -> ~/.animator/configs/player.yaml -> ./configs/player.yaml -> embedded default.
// Files only need to set the values they change; the rest keep their defaults.
func LoadPlayer(customPath string) (PlayerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlayerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePlayer(data)
		if err != nil {
			return PlayerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(PlayerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePlayer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", PlayerFile)); err == nil {
		if cfg, err := parsePlayer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePlayer(defaultPlayerYAML)
	if err != nil {
		return DefaultPlayerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePlayer decodes data over the built-in defaults and validates the result.
func parsePlayer(data []byte) (PlayerConfig, error) {
	cfg := DefaultPlayerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlayerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlayerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".animator", "configs", filename)
}
