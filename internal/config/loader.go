package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrex loads the T-Rex runner configuration.
// Search order: customPath -> ~/.pixeldash/configs/trex.yaml -> ./configs/trex.yaml -> embedded default
//
// Unmarshaling starts from the hardcoded defaults so a partial YAML only
// overrides the keys it names; omitted durations and spawn ranges keep
// playable values instead of dropping to zero.
func LoadTrex(customPath string) (TrexConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultTrexConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("trex.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := DefaultTrexConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/trex.yaml"); err == nil {
		cfg := DefaultTrexConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultTrexConfig()
	if err := yaml.Unmarshal(defaultTrexYAML, &cfg); err != nil {
		return DefaultTrexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixeldash", "configs", filename)
}
