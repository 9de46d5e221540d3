package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/internal/lsp"
	"loglens/internal/version"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run the loglens language server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runLSP,
	}
}

func runLSP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, ".")
	if err != nil {
		return err
	}
	engine := cfg.EngineOptions()
	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Engine:   engine,
		Settings: cfg.Settings(),
		Version:  version.Version,
		Log:      cmd.ErrOrStderr(),
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
