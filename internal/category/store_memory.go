package category

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps categories in memory for tests and stand-alone mode.
type MemoryStore struct {
	mu         sync.RWMutex
	nextID     int64
	categories map[int64]Category
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{categories: make(map[int64]Category)}
}

func (s *MemoryStore) Create(_ context.Context, c *Category) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *c
	stored.ID = s.nextID
	s.categories[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryStore) ListByProject(_ context.Context, projectID int64) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0)
	for _, c := range s.categories {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
