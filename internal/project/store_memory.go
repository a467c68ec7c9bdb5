package project

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps projects in memory for tests and stand-alone mode.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	projects map[int64]Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[int64]Project)}
}

func (s *MemoryStore) Create(_ context.Context, p *Project) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *p
	stored.ID = s.nextID
	s.projects[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID int64) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Project, 0)
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
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

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.projects[id]; ok {
		found := p
		return &found, nil
	}
	return nil, ErrNotFound
}
