package user

import (
	"context"
	"sync"
)

// MemoryStore keeps accounts in memory. It intentionally favors clarity over
// performance and backs both unit tests and the stand-alone server mode.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]User)}
}

func (s *MemoryStore) Create(_ context.Context, u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, ErrDuplicateEmail
		}
	}

	s.nextID++
	stored := *u
	stored.ID = s.nextID
	s.users[stored.ID] = stored
	return &stored, nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		found := u
		return &found, nil
	}
	return nil, ErrNotFound
}
