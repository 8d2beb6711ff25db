package store

import (
	"sync"

	"github.com/google/uuid"
)

// KV is the minimal key/value contract every storage medium satisfies. Reads
// report presence; writes return an error so the fallback probe can detect an
// unusable medium. Callers that want best-effort persistence ignore the error.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is the terminal fallback: a process-local map that never fails.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (s *MemoryKV) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// WithFallback probes preferred by writing and deleting a throwaway key and
// returns it when usable, otherwise fallback. Each store in a chain is probed
// independently, so a disabled or full medium degrades gracefully.
func WithFallback(preferred, fallback KV) KV {
	if preferred == nil {
		return fallback
	}
	key := "aqala-storage-test-" + uuid.NewString()
	if err := preferred.Set(key, "1"); err != nil {
		return fallback
	}
	if err := preferred.Delete(key); err != nil {
		return fallback
	}
	return preferred
}
