package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/clock"
	"github.com/vovakirdan/curry-rush/internal/config"
	"github.com/vovakirdan/curry-rush/internal/core"
	"github.com/vovakirdan/curry-rush/internal/game/curry"
	"github.com/vovakirdan/curry-rush/internal/platform/tui"
	"github.com/vovakirdan/curry-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game.

Controls:
  Space/Enter/Click - Eat the plate in front of you
  V                 - Cycle volume (mute, low, mid, high)
  Q/Esc/Ctrl+C      - Quit

Plates:
  (@@) orange  - Curry
  (@@) red     - Very hot curry: the belt speeds up
  [##]         - Not food: a long penalty if you bite it
  |~~|         - Water: always drinkable, cools you down

Examples:
  curry play
  curry play --fps 120
  curry play --config ./my-curry.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.Namespace = flagNamespace

	records, store := openRecords(logger)
	if store != nil {
		defer store.Close()
	}

	engine := newAudioEngine(cfg.Audio, logger)
	defer engine.Close()

	game, err := curry.New(curry.Options{
		Config:   cfg,
		Records:  records,
		Audio:    engine,
		Logger:   logger,
		OnFinish: runRecorder(store, rc.Namespace, logger),
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	sched := newScheduler(cfg, rc)
	logger.Info("starting", "namespace", rc.Namespace, "interval", sched.Interval, "audio", engine.Ready())

	if err := tui.Run(game, sched, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newScheduler picks the tick interval: --fps wins over the config.
func newScheduler(cfg config.CurryConfig, rc core.RuntimeConfig) *clock.Scheduler {
	interval := cfg.Timing.TickInterval()
	if rc.TickRate > 0 {
		interval = clock.IntervalForRate(rc.TickRate)
	}
	return clock.NewScheduler(interval, cfg.Timing.MinDelay())
}

// newAudioEngine builds the speaker engine and warms the cache in the
// background. Without a sound device the engine stays silent.
func newAudioEngine(cfg config.AudioConfig, logger *log.Logger) *audio.Engine {
	var loader audio.Loader = audio.ToneLoader{}
	if cfg.Assets != "" {
		loader = audio.DirLoader{Dir: expandHome(cfg.Assets)}
	}
	engine := audio.NewEngine(audio.NewCache(loader), logger)
	if err := engine.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: no audio device, playing muted")
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		engine.Preload(ctx)
	}()
	return engine
}

// runRecorder returns the hook that appends finished runs to the history.
func runRecorder(store *storage.Store, namespace string, logger *log.Logger) func(time.Duration, bool) {
	if store == nil {
		return nil
	}
	return func(elapsed time.Duration, best bool) {
		id, err := store.SaveRun(namespace, elapsed, best)
		if err != nil {
			logger.Warn("could not save run", "error", err)
			return
		}
		logger.Debug("run saved", "id", id)
	}
}
