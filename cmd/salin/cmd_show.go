package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gopartner/salin/pkg/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the texts salin copies and the active settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), filepath.Join(dir, config.FileName), cfg)
		return nil
	},
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	fmt.Fprintf(w, "Config:     %s\n", path)
	fmt.Fprintf(w, "Command:    %s\n", cfg.Texts.Command)
	fmt.Fprintf(w, "Link:       %s\n", cfg.Texts.Link)
	fmt.Fprintf(w, "Status id:  %s\n", cfg.Display.StatusID)
	fmt.Fprintf(w, "Clipboard:  %s\n", cfg.Clipboard.Backend)
	fmt.Fprintf(w, "Browser:    %s\n", cfg.Apps.Browser)
	fmt.Fprintf(w, "Hyperlinks: %s\n", cfg.Rendering.Hyperlinks)
}
