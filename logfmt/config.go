package logfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/prism/termcolor"
)

// Config captures formatter settings read from a prism config file.
type Config struct {
	Theme      string
	Capability termcolor.Capability
	TimeLayout string
}

const defaultConfigPath = "~/.config/prism/config.toml"

// LoadConfig locates and parses the prism config, falling back to
// defaults when the file is missing. An empty path means the default
// location.
func LoadConfig(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Theme: themeOrder[0], Capability: termcolor.CapTrueColor}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme      string `toml:"theme"`
		Capability string `toml:"capability"`
		TimeLayout string `toml:"time_layout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if capName := strings.TrimSpace(raw.Capability); capName != "" {
		cap, err := termcolor.ParseCapability(capName)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Capability = cap
	}
	cfg.TimeLayout = strings.TrimSpace(raw.TimeLayout)

	return cfg, nil
}

// Formatter builds a formatter from the config.
func (c Config) Formatter() *Formatter {
	f := NewFormatter(GetTheme(c.Theme), c.Capability)
	f.TimeLayout = c.TimeLayout
	return f
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
