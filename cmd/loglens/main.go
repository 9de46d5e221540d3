package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loglens/internal/version"
)

// newRootCmd assembles the command tree with its persistent flags.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "loglens",
		Short: "Find logging calls and link them to their DataDog log stream",
		Long: `loglens scans Java sources for logger calls such as LOGGER.error("disk full")
and attaches a DataDog link that searches for the logged message.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			traceCleanup = cleanup
			return setupProfiling(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			finishProfiling(cmd)
			finishTracing()
		},
	}

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.String("config", "", "path to loglens.toml (default: nearest one above the working directory)")
	flags.Bool("disable", false, "turn annotations off regardless of config")
	flags.StringArray("keyword", nil, "logging call prefix to detect (repeatable, replaces the configured list)")
	flags.String("trace", "", "trace output path (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval")
	flags.String("cpu-profile", "", "write a CPU profile to this path")
	flags.String("mem-profile", "", "write a heap profile to this path on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this path")

	root.AddCommand(
		newScanCmd(),
		newBrowseCmd(),
		newLinkCmd(),
		newPreviewCmd(),
		newWatchCmd(),
		newLSPCmd(),
		newVersionCmd(),
	)
	return root
}

// main executes the root command. A failing command prints its error,
// dumps the trace ring when one is active, and exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		dumpTraceRing(root)
	}
	finishProfiling(root)
	finishTracing()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loglens: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
