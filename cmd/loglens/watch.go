package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"loglens/internal/driver"
	"loglens/internal/hintfmt"
	"loglens/internal/watch"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-scan Java files as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before a changed file is re-scanned")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	color, err := useColor(cmd)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	w, err := watch.New(dir, watch.Options{
		Debounce: debounce,
		OnError: func(err error) {
			fmt.Fprintf(errOut, "loglens: watch: %v\n", err)
		},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	opts := driverOptions(cfg, 0, dir, stderrReport(cmd))
	pretty := hintfmt.PrettyOpts{Color: color, BaseDir: dir, ShowErrors: true}
	ctx := cmd.Context()

	rescan := func(paths []string) {
		res, err := driver.ScanFiles(ctx, paths, opts)
		if err != nil {
			return
		}
		if !quiet(cmd) {
			fmt.Fprintf(errOut, "[%s] %d changed files\n", time.Now().Format("15:04:05"), len(paths))
		}
		if err := hintfmt.Pretty(cmd.OutOrStdout(), res, pretty); err != nil {
			fmt.Fprintf(errOut, "loglens: %v\n", err)
		}
	}

	initial, err := driver.ListJavaFiles(dir)
	if err != nil {
		return err
	}
	rescan(initial)
	if !quiet(cmd) {
		fmt.Fprintf(errOut, "watching %s (ctrl+c to stop)\n", dir)
	}

	err = w.Run(ctx, rescan)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
