package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "tilegame.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tilegame/configs/tilegame.yaml -> ./configs/tilegame.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Embedded default YAML, falling back to hardcoded values if it fails.
	embedded := DefaultGameConfig()
	if err := yaml.Unmarshal(defaultGameYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultGameConfig(), nil
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped.
func tryLoad(path string) (GameConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, false
	}
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilegame", "configs", filename)
}
