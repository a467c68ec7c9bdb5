package activity

import (
	"context"
	"sync"
)

// Store is append-only. It is the worker's persistence target; requests never
// write to it directly.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID int64) ([]Event, error)
}

// MemoryStore keeps events in memory, newest last.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID int64) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
