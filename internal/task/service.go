package task

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"taskdeck/internal/activity"
	"taskdeck/internal/category"
	"taskdeck/internal/platform/metrics"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

// CategoryCreator is the slice of the category store the task orchestrator
// needs.
type CategoryCreator interface {
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
}

// Service implements task listing, the create-with-category orchestrator,
// and partial updates.
type Service struct {
	tasks      Store
	categories CategoryCreator
	logger     *slog.Logger
	metrics    *metrics.Metrics
	events     activity.Emitter
}

func NewService(tasks Store, categories CategoryCreator, logger *slog.Logger, m *metrics.Metrics, events activity.Emitter) *Service {
	return &Service{tasks: tasks, categories: categories, logger: logger, metrics: m, events: events}
}

// List returns the owner's tasks ordered by creation time descending,
// optionally restricted to one project.
func (s *Service) List(ctx context.Context, ownerID int64, projectID *int64) ([]Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error fetching tasks")
	}
	return tasks, nil
}

// CategoryInput names a category to create alongside a task.
type CategoryInput struct {
	Name string
}

// CreateInput carries the fields of a task creation. Zero-valued optional
// fields take their defaults.
type CreateInput struct {
	Title       string
	ProjectID   int64
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	IsRecurring bool
	Category    *CategoryInput
}

// Create inserts a task owned by ownerID. When a category name is supplied,
// a fresh category row is inserted first and the task references it. There
// is deliberately no lookup by name, so repeated creates with the same name
// accumulate duplicate categories. The two inserts are not atomic: if the
// task insert fails, the category row survives as a harmless orphan.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (*Task, error) {
	if in.Title == "" || in.ProjectID == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Title and project ID are required")
	}
	if in.Status == "" {
		in.Status = StatusPending
	} else if !in.Status.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid status")
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	} else if !in.Priority.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid priority")
	}

	now := requestcontext.Now(ctx)

	var categoryID *int64
	if in.Category != nil && in.Category.Name != "" {
		created, err := s.categories.Create(ctx, &category.Category{
			Name:      in.Category.Name,
			ProjectID: in.ProjectID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating task")
		}
		categoryID = &created.ID
		if s.events != nil {
			s.events.Emit(ctx, activity.Event{
				Action:  activity.ActionCategoryCreated,
				UserID:  ownerID,
				Subject: "category:" + strconv.FormatInt(created.ID, 10),
			})
		}
	}

	created, err := s.tasks.Create(ctx, &Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		IsRecurring: in.IsRecurring,
		OwnerID:     ownerID,
		ProjectID:   in.ProjectID,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating task")
	}

	if s.metrics != nil {
		s.metrics.TasksCreated.Inc()
	}
	if s.events != nil {
		s.events.Emit(ctx, activity.Event{
			Action:  activity.ActionTaskCreated,
			UserID:  ownerID,
			Subject: "task:" + strconv.FormatInt(created.ID, 10),
		})
	}
	return created, nil
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Status   *Status
	Priority *Priority
}

// Update applies a partial update to a task owned by callerID. CompletedAt
// is derived from status, and only when status is part of this update:
// moving to completed stamps it, moving anywhere else clears it, and a
// priority-only update leaves it untouched.
func (s *Service) Update(ctx context.Context, callerID, taskID int64, in UpdateInput) (*Task, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid status")
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid priority")
	}

	now := requestcontext.Now(ctx)
	u := Update{
		Status:    in.Status,
		Priority:  in.Priority,
		UpdatedAt: now,
	}
	if in.Status != nil {
		u.SetCompletedAt = true
		if *in.Status == StatusCompleted {
			u.CompletedAt = &now
		}
	}

	updated, err := s.tasks.UpdateByIDAndOwner(ctx, taskID, callerID, u)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Task not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error updating task")
	}

	if s.events != nil {
		s.events.Emit(ctx, activity.Event{
			Action:  activity.ActionTaskUpdated,
			UserID:  callerID,
			Subject: "task:" + strconv.FormatInt(updated.ID, 10),
		})
	}
	return updated, nil
}
