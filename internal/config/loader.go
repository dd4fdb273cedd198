package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// baseName is the tuning file name without extension.
const baseName = "ghostbrawl"

// Load loads the game tuning. Values missing from a file keep their defaults.
// Search order: customPath -> ~/.ghostbrawl/ghostbrawl.{yaml,toml} ->
// ./configs/ghostbrawl.{yaml,toml} -> embedded default. The first file found
// is the one applied; a broken file is an error, not a fallback.
func Load(customPath string) (Tuning, error) {
	if path := Locate(customPath); path != "" {
		return LoadFile(path)
	}

	cfg := DefaultTuning()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads one tuning file, YAML or TOML by extension.
func LoadFile(path string) (Tuning, error) {
	cfg := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Locate returns the file Load would read, or "" when the embedded default
// would be used.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "."+baseName))
	}
	dirs = append(dirs, "configs")

	var paths []string
	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, baseName+".yaml"),
			filepath.Join(dir, baseName+".toml"),
		)
	}
	return paths
}

func decode(path string, data []byte, cfg *Tuning) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}
