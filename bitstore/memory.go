package bitstore

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	bitvec "github.com/nic-obert/bitvec-padded"
)

// MemoryStore is an in-memory Store implementation for testing and
// ephemeral use. It keeps serialized sequences in a map without any
// filesystem dependency. Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu     sync.RWMutex
	seqs   map[string][]byte
	logger *slog.Logger
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(optFns ...func(*Options)) *MemoryStore {
	opts := applyOptions(optFns)
	return &MemoryStore{
		seqs:   make(map[string][]byte),
		logger: opts.Logger,
	}
}

// Put stores the sequence's current contents under name.
func (m *MemoryStore) Put(_ context.Context, name string, seq *bitvec.Sequence) error {
	if name == "" {
		return ErrInvalidName
	}

	// Serializing copies, so the stored bytes are independent of the
	// caller's sequence.
	data := seq.AppendTo(nil)

	m.mu.Lock()
	m.seqs[name] = data
	m.mu.Unlock()

	m.logger.Debug("sequence stored", "name", name, "bits", seq.Len())
	return nil
}

// Get loads the sequence stored under name.
func (m *MemoryStore) Get(_ context.Context, name string) (*bitvec.Sequence, error) {
	m.mu.RLock()
	data, ok := m.seqs[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Debug("sequence not found", "name", name)
		return nil, ErrNotFound
	}

	// Deserialize copies, so the returned sequence owns its storage.
	return bitvec.Deserialize(data)
}

// Delete removes the sequence stored under name.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	delete(m.seqs, name)
	m.mu.Unlock()

	m.logger.Debug("sequence deleted", "name", name)
	return nil
}

// List returns all stored names matching the prefix.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.seqs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}
