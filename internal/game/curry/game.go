package curry

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/curry-rush/internal/audio"
	"github.com/vovakirdan/curry-rush/internal/clock"
	"github.com/vovakirdan/curry-rush/internal/config"
	"github.com/vovakirdan/curry-rush/internal/record"
)

// Options configures a Game.
type Options struct {
	Config  config.CurryConfig
	Records *record.Adapter // Defaults to an in-memory record
	Audio   audio.Player    // Defaults to audio.Nop
	Logger  *log.Logger

	// OnFinish is called once per completed run, after the best time
	// has been saved.
	OnFinish func(elapsed time.Duration, best bool)
}

// Game is the entry point for a platform: it owns the session and the
// phase machine and is driven by ticks and gestures with explicit times.
// It is not safe for concurrent use; one goroutine drives it.
type Game struct {
	s      *Session
	m      *Machine
	saver  *clock.Debouncer
	logger *log.Logger
	booted bool
}

// New validates the config and builds a game ready to Boot.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pattern, err := ParsePattern(cfg.Gameplay.Pattern)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	records := opts.Records
	if records == nil {
		records = record.NewAdapter(record.NewMemory(), "curry", logger)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	s := &Session{
		Config:   cfg,
		Belt:     NewConveyor(cfg.Belt, pattern),
		Hazard:   NewHazard(cfg.Gameplay.MaxHeat),
		Anim:     NewAnimation(cfg.Timing.Beat(), cfg.Timing.DrinkFrame()),
		Volumes:  audio.Volumes(cfg.Audio.Volumes),
		Best:     record.MaxElapsed,
		Records:  records,
		Audio:    player,
		Logger:   logger,
		OnFinish: opts.OnFinish,
	}
	g := &Game{
		s:      s,
		m:      NewMachine(logger),
		logger: logger,
	}
	g.saver = clock.NewDebouncer(cfg.Audio.SaveDebounce(), g.saveVolume)
	return g, nil
}

// Boot restores the saved volume and runs the init phase.
func (g *Game) Boot(now time.Time) {
	if g.booted {
		return
	}
	g.booted = true
	g.s.Now = now
	rec := g.s.Records.Load()
	g.s.Volume = g.s.Volumes.Clamp(rec.Volume)
	g.s.Best = rec.BestTime
	g.s.Audio.SetVolume(g.s.Volumes.Level(g.s.Volume))
	g.m.Boot(g.s)
}

// Tick runs one scheduler cycle at now.
func (g *Game) Tick(now time.Time) {
	g.s.Now = now
	g.m.Tick(g.s)
	g.s.Anim.Update(now)
	g.saver.Poll(now)
}

// GestureStart delivers a debounced press.
func (g *Game) GestureStart(now time.Time) {
	g.s.Now = now
	g.m.GestureStart(g.s)
}

// GestureEnd delivers a debounced release.
func (g *Game) GestureEnd(now time.Time) {
	g.s.Now = now
	g.m.GestureEnd(g.s)
}

// CycleVolume steps to the next volume level and schedules a save.
// Returns the new indicator index.
func (g *Game) CycleVolume(now time.Time) int {
	g.s.Volume = g.s.Volumes.Next(g.s.Volume)
	g.s.Audio.SetVolume(g.s.Volumes.Level(g.s.Volume))
	g.saver.Call(now)
	return g.s.Volume
}

// Loop starts a looping background cue.
func (g *Game) Loop(c audio.Cue) {
	g.s.Audio.Loop(c)
}

// StopLoop stops the background cue.
func (g *Game) StopLoop() {
	g.s.Audio.StopLoop()
}

func (g *Game) saveVolume() {
	v := g.s.Volume
	if err := g.s.Records.Save(record.Patch{Volume: &v}); err != nil {
		g.logger.Warn("saving volume failed", "error", err)
	}
}

// Scene returns the render intents for the current state.
func (g *Game) Scene() Scene {
	return buildScene(g.s, g.m)
}

// Phase returns the current phase.
func (g *Game) Phase() PhaseID {
	return g.m.Current()
}

// Reach returns the kind of the item a bite would land on now.
func (g *Game) Reach() (Kind, bool) {
	it := g.s.Belt.HitTest(g.s.EatX())
	if it == nil {
		return 0, false
	}
	return it.Kind, true
}

// Blocked reports whether a bite at now would be refused.
func (g *Game) Blocked(now time.Time) bool {
	return g.s.Hazard.Blocked(now)
}

// Session exposes the state for inspection. Callers must not mutate it.
func (g *Game) Session() *Session {
	return g.s
}

// Close flushes a pending volume save and stops background audio.
func (g *Game) Close() {
	g.saver.Flush()
	g.s.Audio.StopLoop()
}
