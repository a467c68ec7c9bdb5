package project

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"taskdeck/internal/activity"
	"taskdeck/internal/platform/metrics"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

// Service implements project listing and creation scoped to the
// authenticated owner.
type Service struct {
	projects Store
	cache    *ListCache
	logger   *slog.Logger
	metrics  *metrics.Metrics
	events   activity.Emitter
}

func NewService(projects Store, cache *ListCache, logger *slog.Logger, m *metrics.Metrics, events activity.Emitter) *Service {
	return &Service{projects: projects, cache: cache, logger: logger, metrics: m, events: events}
}

// List returns the owner's projects ordered by creation time ascending,
// served from the cache when warm.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Project, error) {
	if cached, ok := s.cache.Get(ctx, ownerID); ok {
		return cached, nil
	}

	projects, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error fetching projects")
	}

	s.cache.Set(ctx, ownerID, projects)
	return projects, nil
}

// CreateInput carries the fields of a project creation. Zero-valued optional
// fields take their defaults.
type CreateInput struct {
	Name        string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
}

// Create inserts a project owned by ownerID, applying defaults for omitted
// status and priority.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (*Project, error) {
	if in.Name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Name is required")
	}
	if in.Status == "" {
		in.Status = StatusActive
	} else if !in.Status.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid status")
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	} else if !in.Priority.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Invalid priority")
	}

	now := requestcontext.Now(ctx)
	created, err := s.projects.Create(ctx, &Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating project")
	}

	s.cache.Invalidate(ctx, ownerID)
	if s.metrics != nil {
		s.metrics.ProjectsCreated.Inc()
	}
	if s.events != nil {
		s.events.Emit(ctx, activity.Event{
			Action:  activity.ActionProjectCreated,
			UserID:  ownerID,
			Subject: "project:" + strconv.FormatInt(created.ID, 10),
		})
	}
	return created, nil
}
