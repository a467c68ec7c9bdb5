package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"taskdeck/internal/category"
	"taskdeck/internal/project"
	"taskdeck/internal/task"
	"taskdeck/internal/user"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

// UserService is the identity surface the handlers need.
type UserService interface {
	Register(ctx context.Context, in user.RegisterInput) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	FederatedLogin(ctx context.Context, provider user.Provider, email, name string) (*user.User, error)
}

// TokenIssuer mints access tokens after a successful login.
type TokenIssuer interface {
	GenerateAccessToken(userID int64, now time.Time) (string, error)
	TTL() time.Duration
}

type ProjectService interface {
	List(ctx context.Context, ownerID int64) ([]project.Project, error)
	Create(ctx context.Context, ownerID int64, in project.CreateInput) (*project.Project, error)
}

type CategoryService interface {
	List(ctx context.Context, callerID, projectID int64) ([]category.Category, error)
	Create(ctx context.Context, callerID int64, in category.CreateInput) (*category.Category, error)
}

type TaskService interface {
	List(ctx context.Context, ownerID int64, projectID *int64) ([]task.Task, error)
	Create(ctx context.Context, ownerID int64, in task.CreateInput) (*task.Task, error)
	Update(ctx context.Context, callerID, taskID int64, in task.UpdateInput) (*task.Task, error)
}

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	users      UserService
	tokens     TokenIssuer
	projects   ProjectService
	categories CategoryService
	tasks      TaskService
	logger     *slog.Logger
}

func NewHandler(users UserService, tokens TokenIssuer, projects ProjectService, categories CategoryService, tasks TaskService, logger *slog.Logger) *Handler {
	return &Handler{
		users:      users,
		tokens:     tokens,
		projects:   projects,
		categories: categories,
		tasks:      tasks,
		logger:     logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders the error envelope. Internal causes are logged here,
// once, and never leak to the client.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "request failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	writeJSON(w, dErrors.ToHTTPStatus(code), errorResponse{Error: dErrors.MessageOf(err)})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "Invalid request body")
	}
	return nil
}
