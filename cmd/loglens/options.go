package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"loglens/internal/config"
	"loglens/internal/hint"
)

// loadConfig resolves loglens.toml and applies the --disable and
// --keyword overrides.
func loadConfig(cmd *cobra.Command, startDir string) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Resolve(explicit, startDir)
	if err != nil {
		return config.Config{}, err
	}
	disable, err := flags.GetBool("disable")
	if err != nil {
		return config.Config{}, err
	}
	if disable {
		cfg.Hints.Enabled = false
	}
	if flags.Changed("keyword") {
		keywords, err := flags.GetStringArray("keyword")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Hints.Keywords = keywords
	}
	if cfg.Path != "" && !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "loglens: using %s\n", cfg.Path)
	}
	return cfg, nil
}

// stderrReport prints activation failures; activations never fail loudly.
func stderrReport(cmd *cobra.Command) hint.ReportFunc {
	errOut := cmd.ErrOrStderr()
	return func(link string, err error) {
		fmt.Fprintf(errOut, "loglens: could not open %s: %v\n", link, err)
	}
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

func timings(cmd *cobra.Command) bool {
	t, _ := cmd.Root().PersistentFlags().GetBool("timings")
	return t
}

// startDirFor picks the directory the config lookup starts from.
func startDirFor(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	if info, err := os.Stat(paths[0]); err == nil && !info.IsDir() {
		return filepath.Dir(paths[0])
	}
	return paths[0]
}
