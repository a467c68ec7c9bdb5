package httptransport

import (
	"net/http"

	"taskdeck/internal/project"
	"taskdeck/pkg/dates"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.List(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	dueDate, err := dates.Parse(req.DueDate)
	if err != nil {
		h.writeError(ctx, w, dErrors.Wrap(err, dErrors.CodeBadRequest, "Invalid due date"))
		return
	}

	created, err := h.projects.Create(ctx, requestcontext.UserID(ctx), project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      project.Status(req.Status),
		Priority:    project.Priority(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
