package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loglens/internal/driver"
	"loglens/internal/hint"
	"loglens/internal/source"
	"loglens/internal/syntax"
)

// previewSource is the snippet shown in the settings preview.
const previewSource = `LOGGER.info("Remote job complete");`

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show how a sample logging call is annotated",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, ".")
	if err != nil {
		return err
	}
	root, err := syntax.NewJavaParser().Parse(cmd.Context(), []byte(previewSource))
	if err != nil {
		return err
	}
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual("preview.java", []byte(previewSource)))

	opts := cfg.EngineOptions()
	opts.Report = stderrReport(cmd)
	annotations := driver.Collect(hint.New(opts), root, cfg.Settings(), file)

	out := cmd.OutOrStdout()
	if len(annotations) == 0 {
		fmt.Fprintln(out, previewSource)
		fmt.Fprintln(out, "(annotations disabled)")
		return nil
	}
	a := annotations[0]
	fmt.Fprintln(out, previewSource[:a.Offset]+hint.DefaultPadding+"["+a.Label+"]"+previewSource[a.Offset:])
	fmt.Fprintln(out, a.Link)
	return nil
}
