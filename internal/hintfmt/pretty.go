package hintfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"loglens/internal/driver"
)

var (
	locationColor = color.New(color.Bold)
	labelColor    = color.New(color.FgMagenta, color.Bold)
	linkColor     = color.New(color.FgCyan, color.Underline)
	errorColor    = color.New(color.FgRed, color.Bold)
)

// Pretty prints one line per annotation:
//
//	<path>:<line>:<col>  <label>  <link>
//
// Locations are padded to a common width.
func Pretty(w io.Writer, res *driver.Result, opts PrettyOpts) error {
	records := Records(res, opts.BaseDir, opts.PathMode)

	locWidth := 0
	for _, r := range records {
		if r.Error == "" {
			locWidth = max(locWidth, runewidth.StringWidth(location(r)))
		}
	}

	paint := func(c *color.Color, s string) string {
		if !opts.Color {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}

	var failures []Record
	for _, r := range records {
		if r.Error != "" {
			failures = append(failures, r)
			continue
		}
		loc := location(r)
		pad := strings.Repeat(" ", locWidth-runewidth.StringWidth(loc))
		line := loc + pad + "  " + r.Label + "  " + r.Link
		if opts.Width > 0 && runewidth.StringWidth(line) > opts.Width {
			line = runewidth.Truncate(line, opts.Width, "…")
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		colored := paint(locationColor, loc) + pad + "  " + paint(labelColor, r.Label) + "  " + paint(linkColor, r.Link)
		if _, err := fmt.Fprintln(w, colored); err != nil {
			return err
		}
	}

	if opts.ShowErrors {
		for _, r := range failures {
			if _, err := fmt.Fprintf(w, "%s: %s %s\n", r.Path, paint(errorColor, "error:"), r.Error); err != nil {
				return err
			}
		}
	}
	return nil
}

func location(r Record) string {
	return fmt.Sprintf("%s:%d:%d", r.Path, r.Line, r.Col)
}
