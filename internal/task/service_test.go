package task

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"taskdeck/internal/category"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

type TaskServiceSuite struct {
	suite.Suite
	svc        *Service
	tasks      *MemoryStore
	categories *category.MemoryStore
	now        time.Time
	ctx        context.Context
}

func (s *TaskServiceSuite) SetupTest() {
	s.tasks = NewMemoryStore()
	s.categories = category.NewMemoryStore()
	s.svc = NewService(s.tasks, s.categories, slog.New(slog.DiscardHandler), nil, nil)
	s.now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func TestTaskServiceSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceSuite))
}

func (s *TaskServiceSuite) ctxAt(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

func (s *TaskServiceSuite) TestCreate() {
	s.Run("applies defaults and sets the owner", func() {
		created, err := s.svc.Create(s.ctx, 1, CreateInput{Title: "T1", ProjectID: 10})
		s.Require().NoError(err)

		s.Equal(int64(1), created.OwnerID)
		s.Equal(StatusPending, created.Status)
		s.Equal(PriorityMedium, created.Priority)
		s.False(created.IsRecurring)
		s.Nil(created.CategoryID)
		s.Nil(created.CompletedAt)
	})

	s.Run("rejects missing title or project", func() {
		_, err := s.svc.Create(s.ctx, 1, CreateInput{Title: "T"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("Title and project ID are required", dErrors.MessageOf(err))

		_, err = s.svc.Create(s.ctx, 1, CreateInput{ProjectID: 10})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *TaskServiceSuite) TestCreateWithCategory() {
	s.Run("inserts a fresh category and references it", func() {
		created, err := s.svc.Create(s.ctx, 1, CreateInput{
			Title:     "T1",
			ProjectID: 10,
			Category:  &CategoryInput{Name: "Work"},
		})
		s.Require().NoError(err)
		s.Require().NotNil(created.CategoryID)

		categories, err := s.categories.ListByProject(s.ctx, 10)
		s.Require().NoError(err)
		s.Require().Len(categories, 1)
		s.Equal("Work", categories[0].Name)
		s.Equal(categories[0].ID, *created.CategoryID)
	})

	s.Run("never dedups categories by name", func() {
		for i := 0; i < 2; i++ {
			_, err := s.svc.Create(s.ctx, 1, CreateInput{
				Title:     "T",
				ProjectID: 20,
				Category:  &CategoryInput{Name: "Same"},
			})
			s.Require().NoError(err)
		}

		categories, err := s.categories.ListByProject(s.ctx, 20)
		s.Require().NoError(err)
		s.Len(categories, 2)
	})

	s.Run("empty category name creates no category", func() {
		created, err := s.svc.Create(s.ctx, 1, CreateInput{
			Title:     "T",
			ProjectID: 30,
			Category:  &CategoryInput{},
		})
		s.Require().NoError(err)
		s.Nil(created.CategoryID)
	})
}

func (s *TaskServiceSuite) TestListScopedAndOrdered() {
	_, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{Title: "older", ProjectID: 10})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctxAt(s.now.Add(time.Minute)), 1, CreateInput{Title: "newer", ProjectID: 10})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctxAt(s.now.Add(2*time.Minute)), 2, CreateInput{Title: "foreign", ProjectID: 10})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctxAt(s.now.Add(3*time.Minute)), 1, CreateInput{Title: "elsewhere", ProjectID: 11})
	s.Require().NoError(err)

	s.Run("returns the owner's tasks newest first", func() {
		tasks, err := s.svc.List(s.ctx, 1, nil)
		s.Require().NoError(err)
		s.Require().Len(tasks, 3)
		s.Equal("elsewhere", tasks[0].Title)
		s.Equal("newer", tasks[1].Title)
		s.Equal("older", tasks[2].Title)
	})

	s.Run("filters by project when supplied", func() {
		projectID := int64(10)
		tasks, err := s.svc.List(s.ctx, 1, &projectID)
		s.Require().NoError(err)
		s.Require().Len(tasks, 2)
		s.Equal("newer", tasks[0].Title)
	})
}

func (s *TaskServiceSuite) TestUpdate() {
	created, err := s.svc.Create(s.ctx, 1, CreateInput{Title: "T", ProjectID: 10})
	s.Require().NoError(err)

	s.Run("completing stamps completedAt", func() {
		status := StatusCompleted
		later := s.now.Add(time.Hour)
		updated, err := s.svc.Update(s.ctxAt(later), 1, created.ID, UpdateInput{Status: &status})
		s.Require().NoError(err)
		s.Require().NotNil(updated.CompletedAt)
		s.Equal(later, *updated.CompletedAt)
		s.Equal(later, updated.UpdatedAt)
	})

	s.Run("priority-only update leaves completedAt untouched", func() {
		priority := PriorityHigh
		updated, err := s.svc.Update(s.ctx, 1, created.ID, UpdateInput{Priority: &priority})
		s.Require().NoError(err)
		s.Require().NotNil(updated.CompletedAt)
		s.Equal(PriorityHigh, updated.Priority)
	})

	s.Run("moving away from completed clears completedAt", func() {
		status := StatusBlocked
		updated, err := s.svc.Update(s.ctx, 1, created.ID, UpdateInput{Status: &status})
		s.Require().NoError(err)
		s.Nil(updated.CompletedAt)
	})

	s.Run("rejects updates to tasks owned by someone else", func() {
		status := StatusCompleted
		_, err := s.svc.Update(s.ctx, 2, created.ID, UpdateInput{Status: &status})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejects unknown task", func() {
		_, err := s.svc.Update(s.ctx, 1, 9999, UpdateInput{})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejects invalid status", func() {
		bad := Status("done")
		_, err := s.svc.Update(s.ctx, 1, created.ID, UpdateInput{Status: &bad})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
