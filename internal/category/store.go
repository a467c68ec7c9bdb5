package category

import (
	"context"
	"errors"
)

// ErrNotFound keeps store-level 404s consistent across implementations.
var ErrNotFound = errors.New("category not found")

// Store abstracts category persistence.
type Store interface {
	// Create inserts the category and returns the stored row with its
	// generated ID.
	Create(ctx context.Context, c *Category) (*Category, error)
	// ListByProject returns a project's categories ordered by creation time
	// ascending.
	ListByProject(ctx context.Context, projectID int64) ([]Category, error)
}
