package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gopartner/salin/pkg/actions"
	"github.com/gopartner/salin/pkg/clipboard"
	"github.com/gopartner/salin/pkg/config"
	"github.com/gopartner/salin/pkg/copyhelper"
	"github.com/gopartner/salin/pkg/diag"
	"github.com/gopartner/salin/pkg/page"
	"github.com/gopartner/salin/pkg/render"
)

// runPage opens the interactive page. Failure entries go to salin.log in the
// salin directory since the page owns the terminal.
func runPage(ctx context.Context) error {
	dir, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath := filepath.Join(dir, logFileName)
	log, err := diag.OpenFile(logPath, debugFlag)
	if err != nil {
		return err
	}
	defer log.Close()
	log.Section("page")
	log.Printf("clipboard backend %s, status id %s", cfg.Clipboard.Backend, cfg.Display.StatusID)

	status := render.NewStatusLine(cfg.Display.StatusID)
	helper, err := newPageHelper(cfg, status, log)
	if err != nil {
		return err
	}
	defer helper.Close()

	tier := render.DetectTier(cfg.Rendering.Hyperlinks)
	log.Printf("rendering tier %d", tier)

	err = render.RunPage(ctx, page.Markdown(helper.Command(), helper.Link()), page.Title, helper, status,
		render.WithHandoff(actions.NewHandoff(cfg.Apps)),
		render.WithLog(log),
		render.WithContext(ctx),
		render.WithTier(tier),
	)
	if err != nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

// newPageHelper builds the helper for the interactive page. Bubble Tea owns
// the terminal there, so OSC 52 sequences are never written to it.
func newPageHelper(cfg *config.Config, status copyhelper.StatusDisplay, log copyhelper.DiagnosticLog) (*copyhelper.Helper, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.Clipboard.Backend), clipboard.BackendOSC52) {
		return nil, errors.New("the osc52 clipboard backend is not available in the interactive page; use 'salin command' or 'salin link'")
	}
	return newHelper(cfg, nil, status, log)
}
