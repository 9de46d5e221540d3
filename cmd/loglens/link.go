package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"loglens/internal/browser"
	"loglens/internal/dashboard"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <message|source-line>",
		Short: "Print the DataDog link for a log message",
		Long: `Print the DataDog link for a log message. When the argument contains a
double-quoted literal, as in 'LOGGER.error("disk full")', only the first
literal is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLink,
	}
	cmd.Flags().Bool("open", false, "open the link in the default browser")
	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, ".")
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	var encoded string
	if strings.Contains(text, `"`) {
		encoded = dashboard.ExtractLiteral(text)
	} else {
		encoded = dashboard.EncodeQuery(text)
	}
	link := dashboard.Builder{BaseURL: cfg.Dashboard.BaseURL}.Build(encoded)
	fmt.Fprintln(cmd.OutOrStdout(), link)

	open, err := cmd.Flags().GetBool("open")
	if err != nil || !open {
		return err
	}
	if err := (browser.System{}).Open(link); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	return nil
}
