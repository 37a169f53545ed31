package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sleigh-flight/internal/platform/tui"
	"github.com/vovakirdan/sleigh-flight/internal/replay"
	"github.com/vovakirdan/sleigh-flight/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `List the most recent recorded runs.

With --browse, opens an interactive list where runs can be verified and deleted.

Examples:
  sleigh replays
  sleigh replays --limit 50
  sleigh replays --browse`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run and check it",
	Long: `Play back a recorded run without a screen and compare the outcome
with the recording. Exits with an error when they differ.

Examples:
  sleigh replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to list")
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunReplays(store, width, height)
	}

	entries, err := store.RecentReplays(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recorded runs")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sleigh play' to record one!")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-8s  %-7s  %s\n", "ID", "Score", "Ticks", "Presses", "Date")
	fmt.Printf("  %-6s  %-6s  %-8s  %-7s  %s\n", "--", "-----", "-----", "-------", "----")
	for _, e := range entries {
		fmt.Printf("  %-6d  %-6d  %-8d  %-7d  %s\n",
			e.ID, e.Score, e.Ticks, len(e.Presses), e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("replay #%d not found", id)
	}

	rep, res, err := replay.Verify(*entry)
	if err != nil {
		return err
	}

	fmt.Printf("replay #%d: seed %d, %d presses\n", id, rep.Seed, len(rep.Presses))
	fmt.Printf("  recorded: score %d in %d ticks\n", rep.Score, rep.Ticks)
	fmt.Printf("  replayed: score %d in %d ticks\n", res.Score, res.Ticks)
	if !res.Matches(rep) {
		return fmt.Errorf("replay #%d diverged from its recording", id)
	}
	fmt.Println("  verified")
	return nil
}
