// Package record persists the player's best time and volume level through an
// external key-value store. Reads never fail: a missing or corrupt record
// yields the defaults and a logged warning.
package record

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/curry-rush/internal/storage"
)

// MaxElapsed is the largest representable run time (99:59.999). As a best
// time it means "no record".
const MaxElapsed = 99*time.Minute + 59*time.Second + 999*time.Millisecond

// KV is the raw persistent store. Get returns storage.ErrNotFound for a
// missing namespace.
type KV interface {
	Get(namespace string) (string, error)
	Put(namespace, data string) error
}

// Record is the persisted state.
type Record struct {
	BestTime time.Duration
	Volume   int // Index into the configured volume set
}

// Default returns the record used when nothing valid is stored.
func Default() Record {
	return Record{BestTime: MaxElapsed, Volume: 0}
}

// HasBest reports whether r holds a real best time.
func (r Record) HasBest() bool {
	return r.BestTime > 0 && r.BestTime < MaxElapsed
}

// Patch names the fields to change on Save. Nil fields are preserved.
type Patch struct {
	BestTime *time.Duration
	Volume   *int
}

// wireRecord is the on-disk YAML layout.
type wireRecord struct {
	BestTimeMs *int64 `yaml:"best_time_ms"`
	Volume     *int   `yaml:"volume"`
}

// Adapter reads and writes one namespaced record.
type Adapter struct {
	kv        KV
	namespace string
	logger    *log.Logger
	mu        sync.Mutex
}

// NewAdapter creates an adapter for namespace. A nil logger discards output.
func NewAdapter(kv KV, namespace string, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, namespace: namespace, logger: logger}
}

// Namespace returns the record's namespace.
func (a *Adapter) Namespace() string {
	return a.namespace
}

// Load returns the stored record, or the defaults if it is missing or cannot
// be parsed.
func (a *Adapter) Load() Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load()
}

func (a *Adapter) load() Record {
	rec := Default()

	data, err := a.kv.Get(a.namespace)
	if errors.Is(err, storage.ErrNotFound) {
		return rec
	}
	if err != nil {
		a.logger.Warn("load error, using defaults", "namespace", a.namespace, "error", err)
		return rec
	}

	decoded, err := Decode(data)
	if err != nil {
		a.logger.Warn("load error, using defaults", "namespace", a.namespace, "error", err)
		return rec
	}
	return decoded
}

// Save merges p into the stored record and writes it back with one Put.
func (a *Adapter) Save(p Patch) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec := a.load()
	if p.BestTime != nil {
		rec.BestTime = *p.BestTime
	}
	if p.Volume != nil {
		rec.Volume = *p.Volume
	}

	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := a.kv.Put(a.namespace, data); err != nil {
		return fmt.Errorf("record: save %s: %w", a.namespace, err)
	}
	a.logger.Debug("record saved", "namespace", a.namespace, "best", rec.BestTime, "volume", rec.Volume)
	return nil
}

// Encode renders a record as YAML.
func Encode(r Record) (string, error) {
	ms := r.BestTime.Milliseconds()
	vol := r.Volume
	out, err := yaml.Marshal(wireRecord{BestTimeMs: &ms, Volume: &vol})
	if err != nil {
		return "", fmt.Errorf("record: encode: %w", err)
	}
	return string(out), nil
}

// Decode parses a YAML record. Absent fields take their defaults; values out
// of range are rejected.
func Decode(data string) (Record, error) {
	var w wireRecord
	if err := yaml.Unmarshal([]byte(data), &w); err != nil {
		return Record{}, fmt.Errorf("record: decode: %w", err)
	}

	rec := Default()
	if w.BestTimeMs != nil {
		best := time.Duration(*w.BestTimeMs) * time.Millisecond
		if best <= 0 || best > MaxElapsed {
			return Record{}, fmt.Errorf("record: decode: best time %dms out of range", *w.BestTimeMs)
		}
		rec.BestTime = best
	}
	if w.Volume != nil {
		if *w.Volume < 0 {
			return Record{}, fmt.Errorf("record: decode: negative volume %d", *w.Volume)
		}
		rec.Volume = *w.Volume
	}
	return rec, nil
}
