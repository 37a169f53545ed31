package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/core"
	"github.com/vovakirdan/sleigh-flight/internal/platform/tui"
)

var (
	flagLogFile string
	flagNoWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Sleigh Flight in the terminal.

Controls:
  Space      - Start, jump, continue after game over
  Ctrl+S     - Save a text screenshot to ~/.sleigh/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Every finished run is recorded in the replay database.
When a config file is in use it is watched; edits apply on the next run.

Examples:
  sleigh play
  sleigh play --seed 7
  sleigh play --config ./my-sleigh.yaml --log-file /tmp/sleigh.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "sleigh")
	if err != nil {
		return err
	}

	cfg, path, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	opts := tui.Options{Logger: logger}

	if path != "" && !flagNoWatch {
		watcher, watchErr := config.NewWatcher(path)
		if watchErr != nil {
			logger.Warn("config hot reload disabled", "err", watchErr)
		} else {
			defer watcher.Close()
			opts.Reloads = watcher.Reloads
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.Run(cfg, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
