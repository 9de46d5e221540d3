// Package config loads loglens.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"loglens/internal/dashboard"
	"loglens/internal/hint"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "loglens.toml"

// Config is the decoded loglens.toml.
type Config struct {
	Hints     HintsConfig     `toml:"hints"`
	Dashboard DashboardConfig `toml:"dashboard"`
	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// HintsConfig controls detection and the annotation label.
type HintsConfig struct {
	Enabled  bool     `toml:"enabled"`
	Label    string   `toml:"label"`
	Keywords []string `toml:"keywords"`
}

// DashboardConfig controls the generated links.
type DashboardConfig struct {
	BaseURL string `toml:"base_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hints: HintsConfig{
			Enabled:  true,
			Label:    hint.DefaultLabel,
			Keywords: append([]string(nil), hint.DefaultKeywords...),
		},
		Dashboard: DashboardConfig{BaseURL: dashboard.DefaultBaseURL},
	}
}

// Settings returns the per-scan settings value.
func (c Config) Settings() hint.Settings {
	return hint.Settings{WithStringInterpolationHint: c.Hints.Enabled}
}

// EngineOptions maps the config onto engine options.
func (c Config) EngineOptions() hint.Options {
	return hint.Options{
		Keywords: append([]string(nil), c.Hints.Keywords...),
		Label:    c.Hints.Label,
		BaseURL:  c.Dashboard.BaseURL,
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("hints", "keywords") && len(nonEmpty(cfg.Hints.Keywords)) == 0 {
		return Config{}, fmt.Errorf("%s: [hints].keywords must not be empty", path)
	}
	if meta.IsDefined("hints", "label") && strings.TrimSpace(cfg.Hints.Label) == "" {
		return Config{}, fmt.Errorf("%s: [hints].label must not be blank", path)
	}
	if meta.IsDefined("dashboard", "base_url") && !strings.HasPrefix(cfg.Dashboard.BaseURL, "http") {
		return Config{}, fmt.Errorf("%s: [dashboard].base_url must be an http(s) URL", path)
	}
	cfg.Hints.Keywords = nonEmpty(cfg.Hints.Keywords)
	cfg.Path = path
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest loglens.toml
// above startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
