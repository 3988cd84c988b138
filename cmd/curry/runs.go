package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/curry-rush/internal/platform/tui"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse finished runs",
	Long: `Show finished runs, fastest first. Opens an interactive table unless
--plain is given or stdout is not a terminal.

Examples:
  curry runs
  curry runs --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the viewer")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows to print with --plain")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		if err := tui.RunRunsView(store, flagNamespace, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.Runs(flagNamespace, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest Runs - %s\n", flagNamespace)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'curry play' to set the first time!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-4s  %-16s  %s\n", "Rank", "Time", "Best", "Date", "Run")
	fmt.Printf("  %-4s  %-7s  %-4s  %-16s  %s\n", "----", "----", "----", "----", "---")

	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-7s  %-4s  %-16s  %s\n", row[0], row[1], row[2], row[3], strings.TrimSpace(row[4]))
	}
}
