// sleigh is a one-button arcade game played in the terminal or over SSH.
//
// Usage:
//
//	sleigh play          - Play in this terminal
//	sleigh serve         - Start SSH server for remote play
//	sleigh sim           - Run a headless game with an autopilot
//	sleigh replays       - List recorded runs
//	sleigh replay <id>   - Re-simulate a recorded run and check it
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.sleigh, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.sleigh/sleigh.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sleigh",
	Short: "Sleigh Flight - steer a sleigh between the chimneys",
	Long: `Sleigh Flight is a one-button arcade game. Gravity pulls the sleigh down,
space makes it jump. Fly through the gaps between chimneys and collect presents.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game with an autopilot
  replays  - List recorded runs
  replay   - Re-simulate a recorded run

Examples:
  sleigh play
  sleigh play --seed 42 --config ./easy.yaml
  sleigh serve --ssh :2222
  sleigh sim --pilot every --every 18
  sleigh replay 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sleigh/sleigh.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the game config and reports which source was used.
func loadConfig(logger *log.Logger) (config.SleighConfig, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return config.SleighConfig{}, "", err
	}
	if path == "" {
		logger.Debug("using built-in config")
	} else {
		logger.Debug("config loaded", "path", path)
	}
	return cfg, path, nil
}

// openStore opens the replay database, or returns nil with a warning when it cannot.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database, runs will not be recorded", "err", err)
		return nil
	}
	return store
}
