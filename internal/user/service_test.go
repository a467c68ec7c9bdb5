package user

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"taskdeck/internal/activity"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

type recordingEmitter struct {
	events []activity.Event
}

func (r *recordingEmitter) Emit(_ context.Context, event activity.Event) {
	r.events = append(r.events, event)
}

type UserServiceSuite struct {
	suite.Suite
	svc     *Service
	store   *MemoryStore
	emitter *recordingEmitter
	ctx     context.Context
}

func (s *UserServiceSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.emitter = &recordingEmitter{}
	s.svc = NewService(s.store, slog.New(slog.DiscardHandler), nil, s.emitter)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) register(email string) *User {
	u, err := s.svc.Register(s.ctx, RegisterInput{Email: email, Password: "pw123456", Name: "A"})
	s.Require().NoError(err)
	return u
}

func (s *UserServiceSuite) TestRegister() {
	s.Run("creates account with regular role and hashed password", func() {
		u := s.register("a@b.com")

		s.Equal("a@b.com", u.Email)
		s.Equal(RoleRegular, u.Role)
		s.NotEmpty(u.PasswordHash)
		s.NotEqual("pw123456", u.PasswordHash)
		s.NotZero(u.ID)
		s.Equal(u.CreatedAt, u.UpdatedAt)
	})

	s.Run("rejects missing fields", func() {
		_, err := s.svc.Register(s.ctx, RegisterInput{Email: "x@y.com", Name: "X"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("Missing required fields", dErrors.MessageOf(err))
	})

	s.Run("rejects duplicate email", func() {
		s.register("dup@b.com")
		_, err := s.svc.Register(s.ctx, RegisterInput{Email: "dup@b.com", Password: "other", Name: "B"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal("User already exists", dErrors.MessageOf(err))
	})

	s.Run("duplicate check is case-sensitive exact match", func() {
		s.register("case@b.com")
		u, err := s.svc.Register(s.ctx, RegisterInput{Email: "CASE@b.com", Password: "pw123456", Name: "C"})
		s.Require().NoError(err)
		s.Equal("CASE@b.com", u.Email)
	})
}

func (s *UserServiceSuite) TestAuthenticate() {
	s.Run("valid credentials resolve the account", func() {
		created := s.register("login@b.com")

		u, err := s.svc.Authenticate(s.ctx, "login@b.com", "pw123456")
		s.Require().NoError(err)
		s.Equal(created.ID, u.ID)
	})

	s.Run("unknown email is invalid credentials", func() {
		_, err := s.svc.Authenticate(s.ctx, "nobody@b.com", "pw123456")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("wrong password is invalid credentials", func() {
		s.register("wrongpw@b.com")
		_, err := s.svc.Authenticate(s.ctx, "wrongpw@b.com", "not-the-password")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("federated-only account cannot use password login", func() {
		_, err := s.svc.FederatedLogin(s.ctx, ProviderGoogle, "oauth@b.com", "O")
		s.Require().NoError(err)

		_, err = s.svc.Authenticate(s.ctx, "oauth@b.com", "anything")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *UserServiceSuite) TestFederatedLogin() {
	s.Run("first login provisions an account without a usable password", func() {
		u, err := s.svc.FederatedLogin(s.ctx, ProviderGithub, "fed@b.com", "Fed")
		s.Require().NoError(err)
		s.Equal(RoleRegular, u.Role)
		s.False(u.HasUsablePassword())
	})

	s.Run("repeat logins resolve the same row", func() {
		first, err := s.svc.FederatedLogin(s.ctx, ProviderGoogle, "repeat@b.com", "R")
		s.Require().NoError(err)

		second, err := s.svc.FederatedLogin(s.ctx, ProviderGithub, "repeat@b.com", "R")
		s.Require().NoError(err)
		s.Equal(first.ID, second.ID)
	})

	s.Run("rejects unsupported providers", func() {
		_, err := s.svc.FederatedLogin(s.ctx, Provider("gitlab"), "x@b.com", "X")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *UserServiceSuite) TestActivityEvents() {
	s.register("events@b.com")
	s.Require().NotEmpty(s.emitter.events)
	s.Equal(activity.ActionUserRegistered, s.emitter.events[0].Action)

	_, err := s.svc.Authenticate(s.ctx, "events@b.com", "bad")
	s.Require().Error(err)
	last := s.emitter.events[len(s.emitter.events)-1]
	s.Equal(activity.ActionLoginFailed, last.Action)
}
