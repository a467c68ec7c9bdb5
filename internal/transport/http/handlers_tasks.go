package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskdeck/internal/task"
	"taskdeck/pkg/dates"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var projectID *int64
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "Invalid project ID"))
			return
		}
		projectID = &id
	}

	tasks, err := h.tasks.List(ctx, requestcontext.UserID(ctx), projectID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type taskCategoryRequest struct {
	Name string `json:"name"`
}

type createTaskRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Priority    string               `json:"priority"`
	DueDate     string               `json:"dueDate"`
	IsRecurring bool                 `json:"isRecurring"`
	ProjectID   int64                `json:"projectId"`
	Category    *taskCategoryRequest `json:"category"`
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	dueDate, err := dates.Parse(req.DueDate)
	if err != nil {
		h.writeError(ctx, w, dErrors.Wrap(err, dErrors.CodeBadRequest, "Invalid due date"))
		return
	}

	in := task.CreateInput{
		Title:       req.Title,
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
		DueDate:     dueDate,
		IsRecurring: req.IsRecurring,
	}
	if req.Category != nil {
		in.Category = &task.CategoryInput{Name: req.Category.Name}
	}

	created, err := h.tasks.Create(ctx, requestcontext.UserID(ctx), in)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateTaskRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric ID cannot match any task.
		h.writeError(ctx, w, dErrors.New(dErrors.CodeNotFound, "Task not found"))
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var in task.UpdateInput
	if req.Status != nil {
		status := task.Status(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := task.Priority(*req.Priority)
		in.Priority = &priority
	}

	updated, err := h.tasks.Update(ctx, requestcontext.UserID(ctx), taskID, in)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
