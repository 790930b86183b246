package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopartner/salin/pkg/config"
	"github.com/gopartner/salin/pkg/page"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "Output format: md or html")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the page as Markdown or standalone HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := exportPage(cfg, exportFormat)
		if err != nil {
			return err
		}
		if exportOutput == "" {
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		}
		if err := os.WriteFile(exportOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Exported to", exportOutput)
		return nil
	},
}

// exportPage renders the page in the given format.
func exportPage(cfg *config.Config, format string) (string, error) {
	command, link := cfg.Actions()
	switch strings.ToLower(format) {
	case "md", "markdown":
		return page.Markdown(command, link), nil
	case "html":
		return page.ExportHTML(command, link, cfg.Display.StatusID)
	default:
		return "", fmt.Errorf("unknown export format %q (use md or html)", format)
	}
}
