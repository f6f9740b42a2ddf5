package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
)

type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Anchor(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", unavailable("anchor", err)
	}
	id := codec.ContentID(data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[id]; !ok {
		s.blobs[id] = append([]byte(nil), data...)
	}
	return id, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, contentID string) ([]byte, error) {
	if _, err := codec.ParseContentID(contentID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable("resolve", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[contentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, contentID)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
