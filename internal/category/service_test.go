package category

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"taskdeck/internal/project"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

type CategoryServiceSuite struct {
	suite.Suite
	svc      *Service
	projects *project.MemoryStore
	owned    *project.Project
	foreign  *project.Project
	ctx      context.Context
}

func (s *CategoryServiceSuite) SetupTest() {
	s.projects = project.NewMemoryStore()
	s.svc = NewService(NewMemoryStore(), s.projects, slog.New(slog.DiscardHandler), nil)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	var err error
	s.owned, err = s.projects.Create(s.ctx, &project.Project{Name: "mine", OwnerID: 1})
	s.Require().NoError(err)
	s.foreign, err = s.projects.Create(s.ctx, &project.Project{Name: "theirs", OwnerID: 2})
	s.Require().NoError(err)
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestCreate() {
	s.Run("creates a category under an owned project", func() {
		c, err := s.svc.Create(s.ctx, 1, CreateInput{Name: "Work", ProjectID: s.owned.ID})
		s.Require().NoError(err)
		s.Equal("Work", c.Name)
		s.Equal(s.owned.ID, c.ProjectID)
		s.NotZero(c.ID)
	})

	s.Run("rejects missing fields", func() {
		_, err := s.svc.Create(s.ctx, 1, CreateInput{Name: "Work"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("Name and project ID are required", dErrors.MessageOf(err))
	})

	s.Run("reports a foreign project as not found", func() {
		_, err := s.svc.Create(s.ctx, 1, CreateInput{Name: "Work", ProjectID: s.foreign.ID})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("allows duplicate names within a project", func() {
		_, err := s.svc.Create(s.ctx, 1, CreateInput{Name: "Dup", ProjectID: s.owned.ID})
		s.Require().NoError(err)
		_, err = s.svc.Create(s.ctx, 1, CreateInput{Name: "Dup", ProjectID: s.owned.ID})
		s.Require().NoError(err)
	})
}

func (s *CategoryServiceSuite) TestList() {
	s.Run("lists categories of an owned project", func() {
		_, err := s.svc.Create(s.ctx, 1, CreateInput{Name: "A", ProjectID: s.owned.ID})
		s.Require().NoError(err)

		categories, err := s.svc.List(s.ctx, 1, s.owned.ID)
		s.Require().NoError(err)
		s.Len(categories, 1)
	})

	s.Run("reports a foreign project as not found", func() {
		_, err := s.svc.List(s.ctx, 1, s.foreign.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("reports an unknown project as not found", func() {
		_, err := s.svc.List(s.ctx, 1, 9999)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
