package main

import (
	"fmt"

	"github.com/gopartner/salin/pkg/actions"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:     "open",
	Aliases: []string{"buka"},
	Short:   "Open the project link in the browser",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := actions.NewHandoff(cfg.Apps).OpenURL(cfg.Texts.Link); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Dibuka:", cfg.Texts.Link)
		return nil
	},
}
