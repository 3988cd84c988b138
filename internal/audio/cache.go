package audio

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"golang.org/x/sync/singleflight"
)

// Sound is a decoded, fully buffered asset.
type Sound struct {
	buf *beep.Buffer
}

// NewSound wraps a buffer.
func NewSound(buf *beep.Buffer) *Sound {
	return &Sound{buf: buf}
}

// Format returns the sample format of the buffered audio.
func (s *Sound) Format() beep.Format {
	return s.buf.Format()
}

// Len returns the number of buffered samples.
func (s *Sound) Len() int {
	return s.buf.Len()
}

// Streamer returns a fresh seekable streamer over the whole sound.
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.buf.Streamer(0, s.buf.Len())
}

// Loader produces a decoded sound for an asset name.
type Loader interface {
	Load(ctx context.Context, asset string) (*Sound, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, asset string) (*Sound, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, asset string) (*Sound, error) {
	return f(ctx, asset)
}

// Cache memoizes loads by asset name. Concurrent requests for an asset that
// is still loading share the single in-flight load. Failures are not cached,
// so a later request retries.
type Cache struct {
	loader Loader
	group  singleflight.Group

	mu     sync.RWMutex
	sounds map[string]*Sound

	waiting atomic.Int32 // Callers on the slow path, sharing or running a load
	shared  atomic.Int32 // Results handed to more than one caller
}

// NewCache creates a cache in front of loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		sounds: make(map[string]*Sound),
	}
}

// Load returns the cached sound for asset, loading it at most once.
func (c *Cache) Load(ctx context.Context, asset string) (*Sound, error) {
	if s, ok := c.lookup(asset); ok {
		return s, nil
	}

	c.waiting.Add(1)
	defer c.waiting.Add(-1)
	v, err, shared := c.group.Do(asset, func() (any, error) {
		// Double-check: a load may have finished since the lookup
		if s, ok := c.lookup(asset); ok {
			return s, nil
		}
		s, err := c.loader.Load(ctx, asset)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.sounds[asset] = s
		c.mu.Unlock()
		return s, nil
	})
	if shared {
		c.shared.Add(1)
	}
	if err != nil {
		return nil, err
	}
	return v.(*Sound), nil
}

// Cached reports whether asset is already loaded.
func (c *Cache) Cached(asset string) bool {
	_, ok := c.lookup(asset)
	return ok
}

func (c *Cache) lookup(asset string) (*Sound, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sounds[asset]
	return s, ok
}
