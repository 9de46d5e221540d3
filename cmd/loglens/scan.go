package main

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"loglens/internal/config"
	"loglens/internal/driver"
	"loglens/internal/hint"
	"loglens/internal/hintfmt"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Report the DataDog link for every logging call",
		Long: `Scan Java files or directories and print the DataDog link that each
logging call would carry. Directories are walked recursively.`,
		RunE: runScan,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("jobs", runtime.GOMAXPROCS(0), "number of files scanned in parallel")
	cmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
	cmd.Flags().Int("width", 0, "truncate pretty lines to this many columns (0 = unlimited)")
	cmd.Flags().Bool("fail-on-error", false, "exit with an error when any file cannot be scanned")
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outFormat, err := hintfmt.ParseFormat(format)
	if err != nil {
		return err
	}
	modeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return err
	}
	pathMode, err := hintfmt.ParsePathMode(modeFlag)
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	failOnError, err := cmd.Flags().GetBool("fail-on-error")
	if err != nil {
		return err
	}

	res, base, err := scanPaths(cmd, args, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outFormat {
	case hintfmt.FormatJSON:
		err = hintfmt.JSON(out, res, base, pathMode)
	case hintfmt.FormatMsgPack:
		err = hintfmt.MsgPack(out, res, base, pathMode)
	default:
		color, cerr := useColor(cmd)
		if cerr != nil {
			return cerr
		}
		err = hintfmt.Pretty(out, res, hintfmt.PrettyOpts{
			Color:      color,
			PathMode:   pathMode,
			BaseDir:    base,
			Width:      width,
			ShowErrors: true,
		})
		if err == nil && !quiet(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d annotations in %d files\n", res.Count(), len(res.Files))
		}
	}
	if err != nil {
		return err
	}
	if timings(cmd) {
		printTimings(cmd.ErrOrStderr(), res)
	}
	if failed := res.Failed(); failOnError && len(failed) > 0 {
		return fmt.Errorf("%d of %d files could not be scanned", len(failed), len(res.Files))
	}
	return nil
}

// scanPaths expands args, loads config and runs the driver. report
// overrides where activation failures go.
func scanPaths(cmd *cobra.Command, args []string, report hint.ReportFunc) (*driver.Result, string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	cfg, err := loadConfig(cmd, startDirFor(args))
	if err != nil {
		return nil, "", err
	}
	files, err := driver.ExpandPaths(args)
	if err != nil {
		return nil, "", err
	}
	jobs := runtime.GOMAXPROCS(0)
	if f := cmd.Flags().Lookup("jobs"); f != nil {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if report == nil {
		report = stderrReport(cmd)
	}
	base := startDirFor(args)
	res, err := driver.ScanFiles(cmd.Context(), files, driverOptions(cfg, jobs, base, report))
	if err != nil {
		return nil, "", err
	}
	return res, base, nil
}

func driverOptions(cfg config.Config, jobs int, base string, report hint.ReportFunc) driver.Options {
	engine := cfg.EngineOptions()
	engine.Report = report
	return driver.Options{
		Engine:   engine,
		Settings: cfg.Settings(),
		Jobs:     jobs,
		BaseDir:  base,
	}
}

func printTimings(out io.Writer, res *driver.Result) {
	for _, f := range res.Files {
		if f.Timing == nil || f.Err != nil {
			continue
		}
		fmt.Fprintf(out, "%s %.2f ms\n", filepath.Base(f.Path), f.Timing.TotalMS)
		for _, p := range f.Timing.Phases {
			fmt.Fprintf(out, "  %-10s %7.2f ms", p.Name, p.DurationMS)
			if p.Note != "" {
				fmt.Fprintf(out, "  // %s", p.Note)
			}
			fmt.Fprintln(out)
		}
	}
}
