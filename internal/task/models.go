package task

import "time"

// Status tracks task progress. CompletedAt is derived from it: set when a
// patch moves the task to completed, cleared when a patch moves it anywhere
// else.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusDeferred   Status = "deferred"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked, StatusDeferred:
		return true
	}
	return false
}

// Priority orders tasks by importance.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task belongs to an owner and a project, optionally referencing a category
// within the same project.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
	IsRecurring bool       `json:"isRecurring"`
	OwnerID     int64      `json:"ownerId"`
	ProjectID   int64      `json:"projectId"`
	CategoryID  *int64     `json:"categoryId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
