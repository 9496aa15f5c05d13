// Package local provides an in-process, non-persistent key store for
// development and tests. Keys live only as long as the process.
package local

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gabapcia/bridgerelay/internal/keystore"
)

type store struct {
	mu   sync.RWMutex
	keys map[string]string
}

var _ keystore.Store = (*store)(nil)

// New returns an empty store, optionally seeded with keys.
func New(seed map[string]string) keystore.Store {
	keys := make(map[string]string, len(seed))
	maps.Copy(keys, seed)
	return &store{keys: keys}
}

func (s *store) GetKey(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", keystore.ErrKeyNotFound, id)
	}
	return key, nil
}

func (s *store) StoreKey(_ context.Context, id, key string) error {
	if err := keystore.ValidateKeyID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys[id] = key
	return nil
}

func (s *store) DeleteKey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, id)
	return nil
}

func (s *store) KeyExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.keys[id]
	return ok, nil
}

func (s *store) ListKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.keys)), nil
}
