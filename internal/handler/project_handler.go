package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
	"github.com/myagency/backend/internal/service"
)

// ProjectHandler handles portfolio project CRUD with optional image uploads.
// The same handlers back the /dashboard/projects/* routes and the legacy
// /projects namespace.
type ProjectHandler struct {
	projectService service.ProjectService
	uploads        *Uploader
}

// NewProjectHandler creates a ProjectHandler with the given service and uploader.
func NewProjectHandler(projectService service.ProjectService, uploads *Uploader) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, uploads: uploads}
}

// Create handles POST /dashboard/projects/add and POST /projects (admin).
// title, description, and category are required; the image is optional.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if fields["title"] == "" || fields["description"] == "" || fields["category"] == "" {
		respondError(w, http.StatusBadRequest, "title_description_category_required")
		return
	}

	image, err := h.uploads.FromRequest(r, "image")
	if err != nil && !errors.Is(err, ErrNoFile) {
		slog.Error("image upload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	p := &model.Project{
		Title:       fields["title"],
		Description: fields["description"],
		WebsiteURL:  fields["websiteUrl"],
		Category:    fields["category"],
		Image:       image,
	}
	if err := h.projectService.Create(r.Context(), p); err != nil {
		// Roll back the stored file so no orphan outlives the failed insert.
		_ = h.uploads.Remove(r.Context(), image)
		slog.Error("project create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	respondOrRedirect(w, r, http.StatusOK, p)
}

// Update handles POST /dashboard/projects/edit/{id} and PUT /projects/{id}
// (admin). Missing fields keep their stored values. A new image replaces the
// old file only after the database write succeeds.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("project load failed", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if v := fields["title"]; v != "" {
		p.Title = v
	}
	if v := fields["description"]; v != "" {
		p.Description = v
	}
	if v := fields["websiteUrl"]; v != "" {
		p.WebsiteURL = v
	}
	if v := fields["category"]; v != "" {
		p.Category = v
	}

	oldImage := p.Image
	newImage, err := h.uploads.FromRequest(r, "image")
	if err != nil && !errors.Is(err, ErrNoFile) {
		slog.Error("image upload failed", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "upload_failed")
		return
	}
	if newImage != "" {
		p.Image = newImage
	}

	if err := h.projectService.Update(r.Context(), p); err != nil {
		_ = h.uploads.Remove(r.Context(), newImage)
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("project update failed", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	// Record now points at the new file; drop the replaced one.
	if newImage != "" && oldImage != "" {
		_ = h.uploads.Remove(r.Context(), oldImage)
	}

	respondOrRedirect(w, r, http.StatusOK, p)
}

// Delete handles DELETE /dashboard/projects/delete/{id} and
// DELETE /projects/{id} (admin). The associated image file, if any, is
// removed with the record.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("project load failed", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("project delete failed", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}

	_ = h.uploads.Remove(r.Context(), p.Image)

	respondOrRedirect(w, r, http.StatusOK, map[string]string{"message": "Project deleted successfully!"})
}
