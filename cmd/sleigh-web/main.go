// sleigh-web runs Sleigh Flight in a window, or in the browser when built for js/wasm.
//
//	go run ./cmd/sleigh-web
//	GOOS=js GOARCH=wasm go build -o sleigh.wasm ./cmd/sleigh-web
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleigh-flight/internal/config"
	"github.com/vovakirdan/sleigh-flight/internal/games/sleigh"
	"github.com/vovakirdan/sleigh-flight/internal/platform/web"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "sleigh-web",
	Short:         "Play Sleigh Flight in a window",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sleigh-web",
		Level:           level,
	})

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	seed := flagSeed
	var opts []sleigh.Option
	if seed == 0 {
		seed = time.Now().UnixNano()
		opts = append(opts, sleigh.WithSeeder(func() int64 { return time.Now().UnixNano() }))
	}

	return web.Run(sleigh.New(cfg, seed, opts...), logger)
}
