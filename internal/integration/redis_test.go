//go:build integration

package integration

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	platformredis "taskdeck/internal/platform/redis"
	"taskdeck/internal/project"
)

// RedisCacheSuite runs the project list cache against a throwaway Redis
// container.
type RedisCacheSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *platformredis.Client
	cache     *project.ListCache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.client, err = platformredis.New(url)
	s.Require().NoError(err)
	s.cache = project.NewListCache(s.client, time.Minute, slog.New(slog.DiscardHandler))
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RedisCacheSuite) TestSetGetInvalidate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	projects := []project.Project{
		{ID: 1, Name: "Cached", Status: project.StatusActive, Priority: project.PriorityMedium, OwnerID: 7, CreatedAt: now, UpdatedAt: now},
	}

	_, ok := s.cache.Get(ctx, 7)
	s.False(ok)

	s.cache.Set(ctx, 7, projects)

	cached, ok := s.cache.Get(ctx, 7)
	s.Require().True(ok)
	s.Require().Len(cached, 1)
	s.Equal("Cached", cached[0].Name)

	s.cache.Invalidate(ctx, 7)
	_, ok = s.cache.Get(ctx, 7)
	s.False(ok)
}

func (s *RedisCacheSuite) TestOwnersAreIsolated() {
	ctx := context.Background()
	s.cache.Set(ctx, 8, []project.Project{{ID: 2, Name: "Mine", OwnerID: 8}})

	_, ok := s.cache.Get(ctx, 9)
	s.False(ok)
}
