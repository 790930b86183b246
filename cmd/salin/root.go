package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var debugFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug lines to the diagnostic log")
}

var rootCmd = &cobra.Command{
	Use:           "salin",
	Short:         "Copy the Android SDK installer start command and project link",
	Long:          "salin shows the Android SDK Installer for Termux page with buttons that copy the start command and the project link to the clipboard.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return cmd.Help()
		}
		return runPage(cmd.Context())
	},
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
