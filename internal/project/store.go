package project

import (
	"context"
	"errors"
)

// ErrNotFound keeps store-level 404s consistent across implementations.
var ErrNotFound = errors.New("project not found")

// Store abstracts project persistence.
type Store interface {
	// Create inserts the project and returns the stored row with its
	// generated ID.
	Create(ctx context.Context, p *Project) (*Project, error)
	// ListByOwner returns the owner's projects ordered by creation time
	// ascending.
	ListByOwner(ctx context.Context, ownerID int64) ([]Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
}
