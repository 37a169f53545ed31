package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "sleigh.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.sleigh/sleigh.yaml -> ./configs/sleigh.yaml -> embedded default.
// Files only need to set the fields they change; everything else keeps its default.
// The returned path is the file that was used, or empty for the embedded default.
func Load(customPath string) (SleighConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SleighConfig{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SleighConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files here are skipped rather than fatal, the next source is tried.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	return Default(), "", nil
}

// Default returns the embedded default configuration.
func Default() SleighConfig {
	var cfg SleighConfig
	if err := yaml.Unmarshal(defaultSleighYAML, &cfg); err != nil {
		return DefaultSleighConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (SleighConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SleighConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SleighConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SleighConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sleigh", filename)
}
