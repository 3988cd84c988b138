package audio

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the engine's output rate. Assets at other rates are resampled.
const SampleRate = beep.SampleRate(44100)

var toneFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// DirLoader decodes WAV assets from a directory.
type DirLoader struct {
	Dir string
}

// Load implements Loader.
func (l DirLoader) Load(ctx context.Context, asset string) (*Sound, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(l.Dir, filepath.Base(asset)))
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", asset, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", asset, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", asset, err)
	}
	return NewSound(buf), nil
}

// voice describes the synthesized stand-in for a cue.
type voice struct {
	notes    []float64 // Hz, played in sequence
	note     time.Duration
	square   bool
	loudness float64
}

var voices = [cueCount]voice{
	CueEat:      {notes: []float64{660, 880}, note: 40 * time.Millisecond, loudness: 0.6},
	CueMiss:     {notes: []float64{220}, note: 120 * time.Millisecond, square: true, loudness: 0.4},
	CueHazard:   {notes: []float64{880, 1175, 1568}, note: 50 * time.Millisecond, square: true, loudness: 0.5},
	CueObstacle: {notes: []float64{110, 98}, note: 110 * time.Millisecond, square: true, loudness: 0.5},
	CueWater:    {notes: []float64{523, 659, 784}, note: 60 * time.Millisecond, loudness: 0.6},
	CueStart:    {notes: []float64{1046}, note: 400 * time.Millisecond, loudness: 0.6},
	CueCount:    {notes: []float64{523}, note: 150 * time.Millisecond, loudness: 0.6},
	CueEnd:      {notes: []float64{523, 659, 784, 1046}, note: 150 * time.Millisecond, loudness: 0.6},
}

// ToneLoader synthesizes a short chip-style voice for every cue, so the game
// has sound without shipping assets.
type ToneLoader struct{}

// Load implements Loader.
func (ToneLoader) Load(ctx context.Context, asset string) (*Sound, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := CueForAsset(asset)
	if err != nil {
		return nil, err
	}
	v := voices[c]
	parts := make([]beep.Streamer, 0, len(v.notes))
	for _, hz := range v.notes {
		parts = append(parts, tone(hz, v.note, v.square, v.loudness))
	}
	buf := beep.NewBuffer(toneFormat)
	buf.Append(beep.Seq(parts...))
	return NewSound(buf), nil
}

// tone returns a single note with a linear release over its last quarter.
func tone(hz float64, d time.Duration, square bool, loudness float64) beep.Streamer {
	total := SampleRate.N(d)
	release := max(total/4, 1)
	var phase float64
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			val := math.Sin(2 * math.Pi * phase)
			if square {
				val = 1
				if phase >= 0.5 {
					val = -1
				}
			}
			gain := loudness
			if left := total - pos; left < release {
				gain *= float64(left) / float64(release)
			}
			samples[i][0] = val * gain
			samples[i][1] = val * gain
			phase += hz / float64(SampleRate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	}))
}
