package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopartner/salin/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long:  "Creates ~/.salin/config.yaml with the built-in texts, ready for editing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		path, created, err := initConfig(dir, initForce)
		if err != nil {
			return err
		}
		if !created {
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration already exists at", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Use 'salin init --force' to overwrite it.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration written to", path)
		return nil
	},
}

// initConfig writes the default config into dir unless one exists and force
// is false. It returns the config path and whether a file was written.
func initConfig(dir string, force bool) (string, bool, error) {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, false, nil
	}
	if err := config.Save(dir, config.Default()); err != nil {
		return path, false, fmt.Errorf("saving config: %w", err)
	}
	return path, true, nil
}
