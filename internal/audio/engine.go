package audio

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Engine plays cues through the system speaker. All requests return
// immediately; loading and decoding happen on short-lived goroutines.
//
// When the speaker cannot be opened the engine stays silent but keeps
// accepting requests.
type Engine struct {
	cache  *Cache
	logger *log.Logger

	mixer  *beep.Mixer
	master *effects.Gain

	mu     sync.Mutex
	ready  bool
	volume float64
	loop   *beep.Ctrl

	loopGen atomic.Uint64
	wg      sync.WaitGroup
}

// NewEngine creates an engine loading through cache. Call Start to open the speaker.
func NewEngine(cache *Cache, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Engine{
		cache:  cache,
		logger: logger,
		mixer:  mixer,
		master: &effects.Gain{Streamer: mixer, Gain: -1},
	}
}

// Start opens the speaker. It is safe to call more than once.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		e.logger.Warn("audio backend unavailable, running silent", "error", err)
		return err
	}
	speaker.Play(e.master)
	e.ready = true
	e.applyVolume()
	return nil
}

// Ready reports whether the speaker is open.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// Volume returns the current level.
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// SetVolume implements Player.
func (e *Engine) SetVolume(level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = max(0, min(level, 1))
	e.applyVolume()
}

func (e *Engine) applyVolume() {
	if !e.ready {
		return
	}
	speaker.Lock()
	e.master.Gain = e.volume - 1
	speaker.Unlock()
}

// Play implements Player. Muted cues are skipped without loading.
func (e *Engine) Play(c Cue) {
	if e.Volume() == 0 {
		return
	}
	if !e.cache.Cached(c.Asset()) {
		e.logger.Debug("cue not preloaded, loading on demand", "cue", c)
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		s, err := e.cache.Load(context.Background(), c.Asset())
		if err != nil {
			e.logger.Debug("cue dropped", "cue", c, "error", err)
			return
		}
		e.add(resample(s.Format().SampleRate, s.Streamer()))
	}()
}

// Loop implements Player. A loop whose load finishes after a newer Loop or
// StopLoop is discarded.
func (e *Engine) Loop(c Cue) {
	gen := e.loopGen.Add(1)
	e.stopLoop()
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		s, err := e.cache.Load(context.Background(), c.Asset())
		if err != nil {
			e.logger.Debug("loop dropped", "cue", c, "error", err)
			return
		}
		if e.loopGen.Load() != gen {
			e.logger.Debug("stale loop discarded", "cue", c)
			return
		}
		ctrl := &beep.Ctrl{Streamer: resample(s.Format().SampleRate, beep.Loop(-1, s.Streamer()))}

		e.mu.Lock()
		if e.loopGen.Load() != gen {
			e.mu.Unlock()
			return
		}
		e.loop = ctrl
		e.mu.Unlock()
		e.add(ctrl)
	}()
}

// StopLoop implements Player.
func (e *Engine) StopLoop() {
	e.loopGen.Add(1)
	e.stopLoop()
}

func (e *Engine) stopLoop() {
	e.mu.Lock()
	ctrl := e.loop
	e.loop = nil
	ready := e.ready
	e.mu.Unlock()

	if ctrl == nil || !ready {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
}

func (e *Engine) add(s beep.Streamer) {
	e.mu.Lock()
	ready := e.ready
	e.mu.Unlock()
	if !ready {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Preload warms the cache with every cue. Failures are logged and skipped.
func (e *Engine) Preload(ctx context.Context) {
	Preload(ctx, e.cache, e.logger)
}

// Close waits for pending loads and silences the mixer.
func (e *Engine) Close() {
	e.StopLoop()
	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}

// Preload loads every cue through cache concurrently and waits for all.
// It returns the number of cues that loaded.
func Preload(ctx context.Context, cache *Cache, logger *log.Logger) int {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var (
		wg     sync.WaitGroup
		loaded atomic.Int32
	)
	for _, c := range AllCues() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(ctx, c.Asset()); err != nil {
				logger.Debug("preload failed", "cue", c, "error", err)
				return
			}
			loaded.Add(1)
		}()
	}
	wg.Wait()
	return int(loaded.Load())
}

func resample(from beep.SampleRate, s beep.Streamer) beep.Streamer {
	if from == SampleRate {
		return s
	}
	return beep.Resample(4, from, SampleRate, s)
}
