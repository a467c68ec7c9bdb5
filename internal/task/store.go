package task

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound keeps store-level 404s consistent across implementations. An
// update against a task the caller does not own also reports it.
var ErrNotFound = errors.New("task not found")

// Update is a partial update. Nil fields are left untouched; CompletedAt is
// only written when SetCompletedAt is true, because nil is a meaningful
// value for it (clearing the completion time).
type Update struct {
	Status         *Status
	Priority       *Priority
	SetCompletedAt bool
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

// Store abstracts task persistence.
type Store interface {
	// Create inserts the task and returns the stored row with its generated ID.
	Create(ctx context.Context, t *Task) (*Task, error)
	// ListByOwner returns the owner's tasks ordered by creation time
	// descending, optionally restricted to one project.
	ListByOwner(ctx context.Context, ownerID int64, projectID *int64) ([]Task, error)
	// UpdateByIDAndOwner applies the partial update to the task matching both
	// id and owner, returning the updated row or ErrNotFound.
	UpdateByIDAndOwner(ctx context.Context, id, ownerID int64, u Update) (*Task, error)
}
