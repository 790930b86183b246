package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gopartner/salin/pkg/copyhelper"
	"github.com/gopartner/salin/pkg/diag"
	"github.com/gopartner/salin/pkg/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commandCmd, linkCmd)
}

var commandCmd = &cobra.Command{
	Use:     "command",
	Aliases: []string{"perintah"},
	Short:   "Copy the start command to the clipboard",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCopy(cmd.Context(), copyhelper.NameCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Copy the project link to the clipboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCopy(cmd.Context(), copyhelper.NameLink, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// runCopy copies one text, prints the status line to stdout on success and
// the failure entry to stderr otherwise.
func runCopy(ctx context.Context, name string, stdout, stderr io.Writer) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbg := diag.NewLogger(stderr, debugFlag)
	log := &countingLog{next: dbg}
	helper, err := newHelper(cfg, terminalOut(), render.NewLineDisplay(stdout), log)
	if err != nil {
		return err
	}
	defer helper.Close()

	switch name {
	case copyhelper.NameCommand:
		dbg.Printf("copying command %q via %s backend", helper.Command().Text, cfg.Clipboard.Backend)
		helper.CopyCommand(ctx)
	case copyhelper.NameLink:
		dbg.Printf("copying link %q via %s backend", helper.Link().Text, cfg.Clipboard.Backend)
		helper.CopyLink(ctx)
	default:
		return fmt.Errorf("unknown copy target %q", name)
	}

	if err := helper.Wait(ctx); err != nil {
		return err
	}
	if log.Failed() {
		return errCopyFailed
	}
	return nil
}
