package task

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps tasks in memory for tests and stand-alone mode.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]Task
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tasks: make(map[int64]Task)}
}

func (s *MemoryStore) Create(_ context.Context, t *Task) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *t
	stored.ID = s.nextID
	s.tasks[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID int64, projectID *int64) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0)
	for _, t := range s.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		if projectID != nil && t.ProjectID != *projectID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateByIDAndOwner(_ context.Context, id, ownerID int64, u Update) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.SetCompletedAt {
		t.CompletedAt = u.CompletedAt
	}
	t.UpdatedAt = u.UpdatedAt

	s.tasks[id] = t
	updated := t
	return &updated, nil
}
