package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/clock"
	"github.com/vovakirdan/curry-rush/internal/game/curry"
	"github.com/vovakirdan/curry-rush/internal/record"
)

var (
	flagSpeed   int
	flagTimeout time.Duration
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch a bot play a headless run",
	Long: `Run one game without a terminal UI. A bot taps whenever curry or
water is in reach and skips everything else. Game time runs --speed
times faster than the wall clock. Records are kept in memory only.

Examples:
  curry demo
  curry demo --speed 50 --timeout 30s`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagSpeed, "speed", 10, "Game-time speedup over the wall clock")
	demoCmd.Flags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "Give up after this much wall-clock time")
}

// bot plays a game on its own clock, one tick per step.
type bot struct {
	game *curry.Game
	now  time.Time
	tick time.Duration
	taps int
	done bool
}

func newBot(game *curry.Game, start time.Time, tick time.Duration) *bot {
	game.Boot(start)
	return &bot{game: game, now: start, tick: tick}
}

// step advances game time by one tick and reacts to the new state.
// It reports whether the run is over.
func (b *bot) step() bool {
	if b.done {
		return true
	}
	b.now = b.now.Add(b.tick)
	b.game.Tick(b.now)

	switch b.game.Phase() {
	case curry.PhaseTitle:
		b.tap()
	case curry.PhasePlay:
		if b.worthBiting() {
			b.tap()
		}
	case curry.PhaseEnd:
		b.done = b.game.Session().Anim.Count == 0
	}
	return b.done
}

func (b *bot) worthBiting() bool {
	kind, ok := b.game.Reach()
	if !ok || b.game.Blocked(b.now) {
		return false
	}
	return kind.Edible() || kind == curry.KindCoolant
}

func (b *bot) tap() {
	b.taps++
	b.game.GestureStart(b.now)
	b.game.GestureEnd(b.now)
}

func runDemo(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg := loadConfig()
	if flagSpeed < 1 {
		flagSpeed = 1
	}

	rec := &audio.Recorder{}
	game, err := curry.New(curry.Options{
		Config:  cfg,
		Records: record.NewAdapter(record.NewMemory(), "demo", logger),
		Audio:   rec,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	defer game.Close()

	tick := cfg.Timing.TickInterval()
	if flagFPS > 0 {
		tick = clock.IntervalForRate(flagFPS)
	}
	b := newBot(game, time.Now(), tick)

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	sched := clock.NewScheduler(tick/time.Duration(flagSpeed), cfg.Timing.MinDelay()/time.Duration(flagSpeed))
	logger.Info("demo starting", "speed", flagSpeed, "interval", sched.Interval)

	err = sched.Run(ctx, func(time.Time) {
		if b.step() {
			cancel()
		}
	})
	if !b.done {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(os.Stderr, "Error: demo did not finish within %s\n", flagTimeout)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	printDemo(b, rec, logger)
}

func printDemo(b *bot, rec *audio.Recorder, logger *log.Logger) {
	s := b.game.Session()
	logger.Info("demo finished", "elapsed", s.Elapsed, "taps", b.taps)

	fmt.Printf("Time:  %s\n", curry.FormatClock(s.Elapsed))
	fmt.Printf("Taps:  %d\n", b.taps)
	fmt.Println()
	fmt.Println("Cues:")
	for _, line := range cueTally(rec.Cues()) {
		fmt.Printf("  %s\n", line)
	}
}

// cueTally counts cues by name, most frequent first.
func cueTally(cues []audio.Cue) []string {
	counts := make(map[audio.Cue]int)
	for _, c := range cues {
		counts[c]++
	}
	order := make([]audio.Cue, 0, len(counts))
	for c := range counts {
		order = append(order, c)
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})
	lines := make([]string, len(order))
	for i, c := range order {
		lines[i] = fmt.Sprintf("%-8s %d", c, counts[c])
	}
	return lines
}
