package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/game/curry"
	"github.com/vovakirdan/curry-rush/internal/record"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best time",
	Long: `Print the saved best time and volume for the namespace.

Examples:
  curry best
  curry best --namespace practice`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func runBest(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()

	cfg := loadConfig()
	rec := record.NewAdapter(store, flagNamespace, logger).Load()
	volumes := audio.Volumes(cfg.Audio.Volumes)

	fmt.Printf("Curry Rush - %s\n", flagNamespace)
	fmt.Println()
	if !rec.HasBest() {
		fmt.Println("Best:   --:--.-")
		fmt.Println()
		fmt.Println("Play 'curry play' to set the first time!")
	} else {
		fmt.Printf("Best:   %s\n", curry.FormatClock(rec.BestTime))
	}

	count, err := store.RunCount(flagNamespace)
	if err == nil {
		fmt.Printf("Runs:   %d\n", count)
	}
	fmt.Printf("Volume: %d/%d (%.0f%%)\n", rec.Volume, len(volumes)-1, volumes.Level(rec.Volume)*100)
}
