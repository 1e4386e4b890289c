package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSanta loads the Santa catch configuration.
// Search order: customPath -> ~/.santa/configs/santa.yaml -> ./configs/santa.yaml -> embedded default.
// Files only need to name the values they change; everything else keeps its default.
func LoadSanta(customPath string) (SantaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SantaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSanta(data)
		if err != nil {
			return SantaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("santa.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSanta(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "santa.yaml")); err == nil {
		if cfg, err := parseSanta(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSanta(defaultSantaYAML)
	if err != nil {
		return DefaultSantaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSanta decodes YAML on top of the defaults and validates the result.
func parseSanta(data []byte) (SantaConfig, error) {
	cfg := DefaultSantaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SantaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SantaConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".santa", "configs", filename)
}
