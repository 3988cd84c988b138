package audio

import "sync"

// Player is what the game core talks to. Implementations must return
// quickly; any loading happens in the background.
type Player interface {
	Play(c Cue)
	Loop(c Cue)
	StopLoop()
	SetVolume(level float64)
}

// Nop discards every request.
type Nop struct{}

func (Nop) Play(Cue)          {}
func (Nop) Loop(Cue)          {}
func (Nop) StopLoop()         {}
func (Nop) SetVolume(float64) {}

// Recorder remembers requests in order. Used by tests and the headless demo.
type Recorder struct {
	mu      sync.Mutex
	cues    []Cue
	loop    *Cue
	volumes []float64
}

// Play implements Player.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Loop implements Player.
func (r *Recorder) Loop(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = &c
}

// StopLoop implements Player.
func (r *Recorder) StopLoop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = nil
}

// SetVolume implements Player.
func (r *Recorder) SetVolume(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.volumes = append(r.volumes, level)
}

// Cues returns a copy of the played cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Volumes returns every level passed to SetVolume.
func (r *Recorder) Volumes() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.volumes...)
}

// Looping returns the current loop cue, if any.
func (r *Recorder) Looping() (Cue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loop == nil {
		return 0, false
	}
	return *r.loop, true
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = nil
}

var (
	_ Player = Nop{}
	_ Player = (*Recorder)(nil)
	_ Player = (*Engine)(nil)
)
