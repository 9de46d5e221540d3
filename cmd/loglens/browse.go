package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"loglens/internal/hintfmt"
	"loglens/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [paths...]",
		Short: "Pick a logging call interactively and open its DataDog stream",
		RunE:  runBrowse,
	}
	cmd.Flags().String("ui", "auto", "interactive UI (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "number of files scanned in parallel (0 = GOMAXPROCS)")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if !shouldUseTUI(mode) {
		return errors.New("browse needs an interactive terminal; use scan instead")
	}

	// Activation failures surface in the status line instead of stderr.
	errs := make(chan error, 8)
	report := func(link string, err error) {
		select {
		case errs <- fmt.Errorf("could not open %s: %w", link, err):
		default:
		}
	}

	load := func() ([]ui.Item, error) {
		res, base, err := scanPaths(cmd, args, report)
		if err != nil {
			return nil, err
		}
		records := hintfmt.Records(res, base, hintfmt.PathModeAuto)
		items := make([]ui.Item, 0, res.Count())
		i := 0
		for _, f := range res.Files {
			if f.Err != nil {
				i++
				continue
			}
			for _, a := range f.Annotations {
				r := records[i]
				i++
				items = append(items, ui.Item{
					Location: fmt.Sprintf("%s:%d:%d", r.Path, r.Line, r.Col),
					Label:    a.Label,
					Link:     a.Link,
					Activate: a.Activate,
				})
			}
		}
		if failed := res.Failed(); len(failed) > 0 {
			return items, fmt.Errorf("%d files could not be scanned; first: %v", len(failed), failed[0].Err)
		}
		return items, nil
	}

	model := ui.NewBrowseModel("loglens browse", load, errs)
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
