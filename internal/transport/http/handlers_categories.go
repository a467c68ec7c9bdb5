package httptransport

import (
	"net/http"
	"strconv"

	"taskdeck/internal/category"
	dErrors "taskdeck/pkg/domain-errors"
	"taskdeck/pkg/requestcontext"
)

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("projectId")
	if raw == "" {
		h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "Project ID is required"))
		return
	}
	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "Invalid project ID"))
		return
	}

	categories, err := h.categories.List(ctx, requestcontext.UserID(ctx), projectID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

type createCategoryRequest struct {
	Name      string `json:"name"`
	ProjectID int64  `json:"projectId"`
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.categories.Create(ctx, requestcontext.UserID(ctx), category.CreateInput{
		Name:      req.Name,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
