package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loglens/internal/prof"
)

// profileSession is stopped by finishProfiling after the command returns.
var profileSession *prof.Session

// setupProfiling starts the profilers named by the persistent flags.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	if session.Active() {
		profileSession = session
	}
	return nil
}

func finishProfiling(cmd *cobra.Command) {
	if profileSession == nil {
		return
	}
	if err := profileSession.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "loglens: %v\n", err)
	}
	profileSession = nil
}
