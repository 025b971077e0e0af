package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in each search directory.
const FileName = "spacemerge.yaml"

// LocalDir is the project-relative config directory.
const LocalDir = "configs"

// Load reads the configuration.
// Search order: customPath -> ~/.spacemerge/configs/spacemerge.yaml ->
// ./configs/spacemerge.yaml -> embedded default.
//
// Keys missing from a file keep their default values. Only an explicit
// customPath can produce an error; unreadable or invalid files found during
// the search are skipped.
func Load(customPath string) (MergeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMergeConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultMergeConfig()
	if err := yaml.Unmarshal(defaultMergeYAML, &cfg); err != nil {
		return DefaultMergeConfig(), nil
	}
	return cfg, nil
}

// Resolve returns the file Load would read, or "" when it would fall back to
// the embedded default.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := loadFile(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFile(path string) (MergeConfig, error) {
	cfg := DefaultMergeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(LocalDir, FileName))
}

// WatchPaths lists the config files Load may read whose directory exists,
// so a watcher can pick up files created after startup.
func WatchPaths(customPath string) []string {
	candidates := searchPaths()
	if customPath != "" {
		candidates = []string{customPath}
	}

	var paths []string
	for _, p := range candidates {
		if info, err := os.Stat(filepath.Dir(p)); err == nil && info.IsDir() {
			paths = append(paths, p)
		}
	}
	return paths
}

// userConfigPath returns the path to a user config file, or empty if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacemerge", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg MergeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
