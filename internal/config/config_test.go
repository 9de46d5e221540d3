package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loglens/internal/dashboard"
	"loglens/internal/hint"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Settings().WithStringInterpolationHint {
		t.Fatal("hints must default to enabled")
	}
	if len(cfg.Hints.Keywords) != len(hint.DefaultKeywords) || cfg.Dashboard.BaseURL != dashboard.DefaultBaseURL {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[hints]\nenabled = false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Settings().WithStringInterpolationHint {
		t.Fatal("expected hints disabled")
	}
	if cfg.Hints.Label != hint.DefaultLabel || len(cfg.Hints.Keywords) != len(hint.DefaultKeywords) {
		t.Fatalf("defaults lost: %+v", cfg.Hints)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q", cfg.Path)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), strings.Join([]string{
		"[hints]",
		`label = "Logs"`,
		`keywords = ["LOG.error(", ""]`,
		"[dashboard]",
		`base_url = "https://app.datadoghq.eu/logs"`,
		"",
	}, "\n"))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.EngineOptions()
	if opts.Label != "Logs" || opts.BaseURL != "https://app.datadoghq.eu/logs" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if len(opts.Keywords) != 1 || opts.Keywords[0] != "LOG.error(" {
		t.Fatalf("unexpected keywords: %v", opts.Keywords)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty keywords": "[hints]\nkeywords = []\n",
		"blank label":    "[hints]\nlabel = \"  \"\n",
		"bad base url":   "[dashboard]\nbase_url = \"ftp://x\"\n",
		"unknown key":    "[hints]\ncolour = \"red\"\n",
		"broken toml":    "[hints\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, t.TempDir(), content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestResolveWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[hints]\nlabel = \"Up\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Hints.Label != "Up" {
		t.Fatalf("expected config from parent, got %+v", cfg.Hints)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}
