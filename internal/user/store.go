package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound keeps store-level 404s consistent across implementations.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail signals a unique-constraint hit on email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is interface-driven to keep the service testable and to allow
// swapping the in-memory and PostgreSQL implementations without rewiring
// business code. Email matching is case-sensitive exact match.
type Store interface {
	// Create inserts the user and returns the stored row with its generated ID.
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
