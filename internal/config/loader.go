package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search path.
const FileName = "bigboard.yaml"

// Load loads the board configuration and reports where it came from.
// Search order: customPath -> ~/.bigboard/config.yaml -> ./configs/bigboard.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Unreadable files in the search path fall through to the next entry,
	// but a file that exists and does not parse is an error.
	for _, path := range searchPath() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// searchPath lists config files to try, most specific first.
func searchPath() []string {
	var paths []string
	if p := userConfigPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bigboard", filename)
}

// Validate checks sizes, rates, colors and the bounds policy.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.Grid.CellWidth, c.Grid.CellHeight))
	}
	if c.Cursor.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("cursor line_width must be positive, got %g", c.Cursor.LineWidth))
	}
	if c.Render.UpdatesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("render updates_per_second must be positive, got %d", c.Render.UpdatesPerSecond))
	}
	if c.Render.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("render tick_rate must be positive, got %d", c.Render.TickRate))
	}
	if _, err := c.Options(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
