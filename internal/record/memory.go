package record

import (
	"sync"

	"github.com/vovakirdan/curry-rush/internal/storage"
)

// Memory is an in-process KV used when no database is available.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
	puts int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(namespace string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[namespace]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

// Put implements KV.
func (m *Memory) Put(namespace, data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[namespace] = data
	m.puts++
	return nil
}

// Puts returns how many writes the store received.
func (m *Memory) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

var (
	_ KV = (*Memory)(nil)
	_ KV = (*storage.Store)(nil)
)
