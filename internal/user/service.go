package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskdeck/internal/activity"
	"taskdeck/internal/platform/metrics"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

// Service implements registration and the identity resolver's credential
// paths: password login and federated (google/github) login.
type Service struct {
	users   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	events  activity.Emitter
}

func NewService(users Store, logger *slog.Logger, m *metrics.Metrics, events activity.Emitter) *Service {
	return &Service{users: users, logger: logger, metrics: m, events: events}
}

// RegisterInput carries the fields of a password registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates a password account. The email must not already exist;
// matching is case-sensitive exact match.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Missing required fields")
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := requestcontext.Now(ctx)
	created, err := s.users.Create(ctx, &User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         RoleRegular,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error creating user")
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	s.emit(ctx, activity.Event{Action: activity.ActionUserRegistered, UserID: created.ID})
	return created, nil
}

// Authenticate resolves password credentials to an account. Unknown email,
// a federated-only account, or a hash mismatch all yield the same
// invalid-credentials error so callers cannot probe for accounts.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, s.invalidCredentials(ctx)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, s.invalidCredentials(ctx)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error signing in")
	}

	if !u.HasUsablePassword() {
		// Account provisioned by an external provider; no password to compare.
		return nil, s.invalidCredentials(ctx)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, s.invalidCredentials(ctx)
	}

	if s.metrics != nil {
		s.metrics.LoginsSucceeded.Inc()
	}
	s.emit(ctx, activity.Event{Action: activity.ActionUserLogin, UserID: u.ID})
	return u, nil
}

// FederatedLogin resolves a federated identity to an account, provisioning
// one on first login. The OAuth handshake happens upstream; this receives the
// verified email and display name from the provider callback.
func (s *Service) FederatedLogin(ctx context.Context, provider Provider, email, name string) (*User, error) {
	switch provider {
	case ProviderGoogle, ProviderGithub:
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, "Unsupported provider")
	}
	if email == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Missing required fields")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		s.emit(ctx, activity.Event{Action: activity.ActionUserLogin, UserID: existing.ID})
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error signing in")
	}

	now := requestcontext.Now(ctx)
	created, err := s.users.Create(ctx, &User{
		Email:     email,
		Name:      strings.TrimSpace(name),
		Role:      RoleRegular,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// Lost a provisioning race; the row now exists.
			return s.users.FindByEmail(ctx, email)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error signing in")
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	s.emit(ctx, activity.Event{Action: activity.ActionUserRegistered, UserID: created.ID})
	s.emit(ctx, activity.Event{Action: activity.ActionUserLogin, UserID: created.ID})
	return created, nil
}

// FindByID resolves an account by ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Error fetching user")
	}
	return u, nil
}

func (s *Service) invalidCredentials(ctx context.Context) error {
	if s.metrics != nil {
		s.metrics.LoginsFailed.Inc()
	}
	s.emit(ctx, activity.Event{Action: activity.ActionLoginFailed})
	return dErrors.New(dErrors.CodeUnauthorized, "Invalid credentials")
}

func (s *Service) emit(ctx context.Context, event activity.Event) {
	if s.events != nil {
		s.events.Emit(ctx, event)
	}
}
