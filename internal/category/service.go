package category

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"taskdeck/internal/activity"
	"taskdeck/internal/project"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

// ProjectFinder resolves projects for the ownership check. The project store
// satisfies it.
type ProjectFinder interface {
	FindByID(ctx context.Context, id int64) (*project.Project, error)
}

// Service implements category listing and creation. Both operations require
// the caller to own the referenced project; foreign or unknown projects are
// reported as not found rather than forbidden.
type Service struct {
	categories Store
	projects   ProjectFinder
	logger     *slog.Logger
	events     activity.Emitter
}

func NewService(categories Store, projects ProjectFinder, logger *slog.Logger, events activity.Emitter) *Service {
	return &Service{categories: categories, projects: projects, logger: logger, events: events}
}

// List returns the categories of a project owned by callerID.
func (s *Service) List(ctx context.Context, callerID, projectID int64) ([]Category, error) {
	if err := s.requireOwnedProject(ctx, callerID, projectID); err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByProject(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error fetching categories")
	}
	return categories, nil
}

// CreateInput carries the fields of a category creation.
type CreateInput struct {
	Name      string
	ProjectID int64
}

// Create inserts a category under a project owned by callerID.
func (s *Service) Create(ctx context.Context, callerID int64, in CreateInput) (*Category, error) {
	if in.Name == "" || in.ProjectID == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Name and project ID are required")
	}
	if err := s.requireOwnedProject(ctx, callerID, in.ProjectID); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	created, err := s.categories.Create(ctx, &Category{
		Name:      in.Name,
		ProjectID: in.ProjectID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating category")
	}

	if s.events != nil {
		s.events.Emit(ctx, activity.Event{
			Action:  activity.ActionCategoryCreated,
			UserID:  callerID,
			Subject: "category:" + strconv.FormatInt(created.ID, 10),
		})
	}
	return created, nil
}

func (s *Service) requireOwnedProject(ctx context.Context, callerID, projectID int64) error {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Project not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Error fetching categories")
	}
	if p.OwnerID != callerID {
		return dErrors.New(dErrors.CodeNotFound, "Project not found")
	}
	return nil
}
