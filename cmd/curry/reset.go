package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResetRuns bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the best time",
	Long: `Delete the saved record (best time and volume) for the namespace.
With --runs the run history is cleared too.

Examples:
  curry reset
  curry reset --runs --namespace practice`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetRuns, "runs", false, "Also clear the run history")
}

func runReset(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()

	if err := store.Delete(flagNamespace); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
		os.Exit(1)
	}
	logger.Info("record deleted", "namespace", flagNamespace)
	fmt.Printf("Record for %q deleted.\n", flagNamespace)

	if !flagResetRuns {
		return
	}
	if err := store.ClearRuns(flagNamespace); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	logger.Info("runs cleared", "namespace", flagNamespace)
	fmt.Printf("Run history for %q cleared.\n", flagNamespace)
}
