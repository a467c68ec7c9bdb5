package project

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

type ProjectServiceSuite struct {
	suite.Suite
	svc   *Service
	store *MemoryStore
	now   time.Time
}

func (s *ProjectServiceSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.svc = NewService(s.store, nil, slog.New(slog.DiscardHandler), nil, nil)
	s.now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func TestProjectServiceSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) ctxAt(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

func (s *ProjectServiceSuite) TestCreate() {
	s.Run("applies defaults and sets the owner", func() {
		p, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{Name: "P1"})
		s.Require().NoError(err)

		s.Equal(int64(1), p.OwnerID)
		s.Equal(StatusActive, p.Status)
		s.Equal(PriorityMedium, p.Priority)
		s.Nil(p.DueDate)
		s.Equal(s.now, p.CreatedAt)
	})

	s.Run("keeps supplied fields", func() {
		due := s.now.AddDate(0, 1, 0)
		p, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{
			Name:        "P2",
			Description: "desc",
			Status:      StatusOnHold,
			Priority:    PriorityHigh,
			DueDate:     &due,
		})
		s.Require().NoError(err)
		s.Equal(StatusOnHold, p.Status)
		s.Equal(PriorityHigh, p.Priority)
		s.Equal(&due, p.DueDate)
	})

	s.Run("rejects missing name", func() {
		_, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("Name is required", dErrors.MessageOf(err))
	})

	s.Run("rejects unknown status", func() {
		_, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{Name: "P", Status: Status("archived")})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ProjectServiceSuite) TestListScopedToOwnerAndOrdered() {
	// Interleave creates across two owners with increasing timestamps.
	_, err := s.svc.Create(s.ctxAt(s.now), 1, CreateInput{Name: "first"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctxAt(s.now.Add(time.Minute)), 2, CreateInput{Name: "other"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctxAt(s.now.Add(2*time.Minute)), 1, CreateInput{Name: "second"})
	s.Require().NoError(err)

	projects, err := s.svc.List(context.Background(), 1)
	s.Require().NoError(err)
	s.Require().Len(projects, 2)
	s.Equal("first", projects[0].Name)
	s.Equal("second", projects[1].Name)
	for _, p := range projects {
		s.Equal(int64(1), p.OwnerID)
	}
}

func (s *ProjectServiceSuite) TestListEmptyForUnknownOwner() {
	projects, err := s.svc.List(context.Background(), 42)
	s.Require().NoError(err)
	s.Empty(projects)
}
