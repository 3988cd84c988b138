package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/wav"
)

func TestCueAssets(t *testing.T) {
	tests := []struct {
		cue  Cue
		want string
	}{
		{CueEat, "se_eat.wav"},
		{CueMiss, "se_miss.wav"},
		{CueHazard, "se_hazard.wav"},
		{CueObstacle, "se_obstacle.wav"},
		{CueWater, "se_water.wav"},
		{CueStart, "se_start.wav"},
		{CueCount, "se_count.wav"},
		{CueEnd, "se_end.wav"},
	}
	for _, tt := range tests {
		if got := tt.cue.Asset(); got != tt.want {
			t.Errorf("%v.Asset() = %q, want %q", tt.cue, got, tt.want)
		}
		back, err := CueForAsset(tt.want)
		if err != nil || back != tt.cue {
			t.Errorf("CueForAsset(%q) = %v, %v", tt.want, back, err)
		}
	}
	if len(AllCues()) != len(tests) {
		t.Errorf("AllCues() has %d cues, want %d", len(AllCues()), len(tests))
	}
	if _, err := CueForAsset("se_bgm.wav"); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("unknown asset error = %v", err)
	}
}

func TestVolumes(t *testing.T) {
	v := DefaultVolumes
	if got := v.Next(0); got != 1 {
		t.Errorf("Next(0) = %d", got)
	}
	if got := v.Next(3); got != 0 {
		t.Errorf("Next(3) = %d, want wrap to 0", got)
	}
	if got := v.Level(2); got != 0.4 {
		t.Errorf("Level(2) = %v", got)
	}
	if got := v.Level(99); got != 0.8 {
		t.Errorf("Level(99) = %v, want clamped 0.8", got)
	}

	tests := []struct {
		level float64
		want  int
	}{
		{0, 0},
		{0.1, 0},
		{0.2, 1},
		{0.5, 2},
		{0.8, 3},
		{1, 3},
	}
	for _, tt := range tests {
		if got := v.IndexFor(tt.level); got != tt.want {
			t.Errorf("IndexFor(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// waitFor polls cond until it holds or a second passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		runtime.Gosched()
	}
}

// countingLoader synthesizes sounds and counts how often it is asked.
type countingLoader struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
	fail    atomic.Bool
}

func (l *countingLoader) Load(ctx context.Context, asset string) (*Sound, error) {
	l.calls.Add(1)
	if l.entered != nil {
		l.entered <- struct{}{}
	}
	if l.release != nil {
		<-l.release
	}
	if l.fail.Load() {
		return nil, errors.New("decode failed")
	}
	return ToneLoader{}.Load(ctx, asset)
}

func TestCacheCollapsesConcurrentLoads(t *testing.T) {
	loader := &countingLoader{
		entered: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	cache := NewCache(loader)

	var (
		wg      sync.WaitGroup
		results [2]*Sound
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		s, err := cache.Load(context.Background(), CueEat.Asset())
		if err != nil {
			t.Errorf("first load: %v", err)
		}
		results[0] = s
	}()
	<-loader.entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		s, err := cache.Load(context.Background(), CueEat.Asset())
		if err != nil {
			t.Errorf("second load: %v", err)
		}
		results[1] = s
	}()
	waitFor(t, func() bool { return cache.waiting.Load() == 2 })
	close(loader.release)
	wg.Wait()

	if got := loader.calls.Load(); got != 1 {
		t.Errorf("underlying loads = %d, want 1", got)
	}
	if got := cache.shared.Load(); got != 2 {
		t.Errorf("callers sharing the in-flight load = %d, want 2", got)
	}
	if results[0] == nil || results[0] != results[1] {
		t.Errorf("requests resolved to different sounds: %p %p", results[0], results[1])
	}
	if !cache.Cached(CueEat.Asset()) {
		t.Error("asset not cached after load")
	}
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	loader := &countingLoader{}
	loader.fail.Store(true)
	cache := NewCache(loader)

	if _, err := cache.Load(context.Background(), CueMiss.Asset()); err == nil {
		t.Fatal("expected load error")
	}
	if cache.Cached(CueMiss.Asset()) {
		t.Fatal("failure was cached")
	}

	loader.fail.Store(false)
	if _, err := cache.Load(context.Background(), CueMiss.Asset()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("underlying loads = %d, want 2", got)
	}
}

func TestToneLoaderCoversEveryCue(t *testing.T) {
	for _, c := range AllCues() {
		s, err := ToneLoader{}.Load(context.Background(), c.Asset())
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if s.Len() == 0 {
			t.Errorf("%v: empty sound", c)
		}
		if s.Format().SampleRate != SampleRate {
			t.Errorf("%v: sample rate %v", c, s.Format().SampleRate)
		}
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()

	tone, err := ToneLoader{}.Load(context.Background(), CueCount.Asset())
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, CueCount.Asset()))
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.Encode(f, tone.Streamer(), tone.Format()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	s, err := DirLoader{Dir: dir}.Load(context.Background(), CueCount.Asset())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != tone.Len() {
		t.Errorf("decoded %d samples, want %d", s.Len(), tone.Len())
	}

	if _, err := (DirLoader{Dir: dir}).Load(context.Background(), CueEnd.Asset()); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestPreload(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader)
	if got := Preload(context.Background(), cache, nil); got != len(AllCues()) {
		t.Errorf("Preload loaded %d, want %d", got, len(AllCues()))
	}
	Preload(context.Background(), cache, nil)
	if got := int(loader.calls.Load()); got != len(AllCues()) {
		t.Errorf("second preload hit the loader: %d calls", got)
	}
}

func TestEngineSkipsMutedCues(t *testing.T) {
	loader := &countingLoader{}
	e := NewEngine(NewCache(loader), nil)

	e.Play(CueEat)
	e.Close()
	if got := loader.calls.Load(); got != 0 {
		t.Errorf("muted cue loaded %d times", got)
	}
}

func TestEngineLoadsWithoutSpeaker(t *testing.T) {
	loader := &countingLoader{}
	e := NewEngine(NewCache(loader), nil)
	e.SetVolume(0.4)

	e.Play(CueEat)
	e.Play(CueEat)
	e.Close()

	if e.Ready() {
		t.Fatal("engine should not be ready before Start")
	}
	if got := loader.calls.Load(); got < 1 {
		t.Errorf("expected the cue to load, got %d calls", got)
	}
}

func TestEngineLogsOnDemandLoads(t *testing.T) {
	var buf strings.Builder
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	cache := NewCache(&countingLoader{})
	e := NewEngine(cache, logger)
	e.SetVolume(0.4)

	if _, err := cache.Load(context.Background(), CueEat.Asset()); err != nil {
		t.Fatal(err)
	}
	e.Play(CueEat)
	e.Play(CueMiss)
	e.Close()

	out := buf.String()
	if strings.Count(out, "cue not preloaded") != 1 {
		t.Fatalf("want one on-demand log line, got:\n%s", out)
	}
	if !strings.Contains(out, "cue=miss") {
		t.Errorf("on-demand log should name the miss cue:\n%s", out)
	}
}

func TestEngineStaleLoopDiscarded(t *testing.T) {
	loader := &countingLoader{
		entered: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	e := NewEngine(NewCache(loader), nil)

	e.Loop(CueStart)
	<-loader.entered
	e.StopLoop()
	close(loader.release)
	e.Close()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loop != nil {
		t.Error("stale loop was installed")
	}
}

func TestEngineVolumeClamped(t *testing.T) {
	e := NewEngine(NewCache(ToneLoader{}), nil)
	e.SetVolume(3)
	if got := e.Volume(); got != 1 {
		t.Errorf("Volume() = %v, want 1", got)
	}
	e.SetVolume(-1)
	if got := e.Volume(); got != 0 {
		t.Errorf("Volume() = %v, want 0", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play(CueCount)
	r.Play(CueStart)
	r.Loop(CueEnd)
	r.SetVolume(0.2)

	cues := r.Cues()
	if len(cues) != 2 || cues[0] != CueCount || cues[1] != CueStart {
		t.Errorf("Cues() = %v", cues)
	}
	if c, ok := r.Looping(); !ok || c != CueEnd {
		t.Errorf("Looping() = %v, %v", c, ok)
	}
	r.StopLoop()
	if _, ok := r.Looping(); ok {
		t.Error("loop still set after StopLoop")
	}
	if v := r.Volumes(); len(v) != 1 || v[0] != 0.2 {
		t.Errorf("Volumes() = %v", v)
	}
}
