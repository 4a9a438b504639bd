package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration sources reported by Loader.Load when no custom path is used.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const fileName = "snake.yaml"

// Loader resolves the snake configuration from a list of directories.
type Loader struct {
	// UserDir is searched first, typically ~/.snake/configs.
	UserDir string
	// LocalDir is searched second, typically ./configs.
	LocalDir string
}

// DefaultLoader returns a loader for ~/.snake/configs and ./configs.
func DefaultLoader() Loader {
	return Loader{
		UserDir:  userConfigDir(),
		LocalDir: "configs",
	}
}

// LoadSnake loads the snake configuration using DefaultLoader.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	return DefaultLoader().Load(customPath)
}

// Load resolves and validates the configuration.
// Search order: customPath -> UserDir/snake.yaml -> LocalDir/snake.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the fields they change.
// A custom path that cannot be read or parsed is an error; the searched
// locations are skipped silently when missing or malformed.
// The second return value names where the configuration came from.
func (l Loader) Load(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	for _, dir := range []string{l.UserDir, l.LocalDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return validated(cfg, path)
		}
	}

	if cfg, err := parse(defaultSnakeYAML); err == nil {
		return validated(cfg, SourceEmbedded)
	}
	return DefaultSnakeConfig(), SourceBuiltin, nil
}

// parse overlays YAML data on the defaults.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

func validated(cfg SnakeConfig, source string) (SnakeConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigDir returns ~/.snake/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs")
}

// Marshal renders a configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
