package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-play/internal/fault"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "play.yaml"

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/play.yaml -> ./configs/play.yaml ->
// embedded default. Keys missing from a file keep their default values.
// An unreadable or invalid customPath, or a config that fails validation,
// is a usage error.
func Load(customPath string) (Config, string, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fault.Usagef("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fault.Usagef("config: parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return validated(candidate, path)
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, "embedded")
}

func validated(cfg Config, source string) (Config, string, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, source, fault.Usagef("config %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns ~/.arcade/play.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", FileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
