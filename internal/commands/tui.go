package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/clipboard"
	"github.com/neuroad/neuroad-cli/internal/config"
	"github.com/neuroad/neuroad-cli/internal/logging"
	"github.com/neuroad/neuroad-cli/internal/tui"
)

// TUICmd launches the interactive TUI application
var TUICmd = &cobra.Command{
	Use:    "tui",
	Short:  "Launch the interactive terminal UI",
	Hidden: true, // running `neuroad` without args launches the TUI
	Long: `Launch the interactive terminal UI.

Navigation:
  - 1-3 or click the header to switch screens
  - Arrow keys to move, Enter to select, Esc to go back
  - ctrl+l toggles Arabic/English, ctrl+t toggles light/dark
  - Press 'q' to quit`,
	RunE: runTUI,
}

// RunTUIDefault runs the TUI when no subcommand is specified.
func RunTUIDefault() error {
	fi, _ := os.Stdout.Stat()
	if fi == nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return fmt.Errorf("not a terminal, use specific commands instead")
	}
	return runTUI(nil, nil)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Logs go to a file so they do not corrupt the screen
	logFile, err := logging.OpenFile(config.GetConfigDir(), "neuroad.log")
	if err == nil {
		defer logFile.Close()
		Prepare(globals, logFile)
	} else {
		Prepare(globals, io.Discard)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *config.Config, 1)
	go func() {
		err := config.Watch(ctx, func(cfg *config.Config) {
			select {
			case changes <- cfg:
			default:
				// Drop the stale value; the UI only needs the latest.
				select {
				case <-changes:
				default:
				}
				changes <- cfg
			}
		})
		if err != nil {
			slog.Warn("config watch stopped", "error", err)
		}
	}()

	return tui.Run(tui.Deps{
		Client:        e.client,
		Catalog:       e.catalog,
		Auth:          e.auth,
		Lang:          e.lang,
		Theme:         e.theme,
		Clipboard:     clipboard.New(),
		AuthURL:       e.cfg.AuthURL,
		ExportDir:     filepath.Join(config.GetConfigDir(), "exports"),
		ConfigChanges: changes,
	})
}
