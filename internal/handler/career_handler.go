package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
	"github.com/myagency/backend/internal/service"
)

// CareerHandler handles the public career form and admin status transitions.
type CareerHandler struct {
	careerService service.CareerService
	uploads       *Uploader
}

// NewCareerHandler creates a CareerHandler with the given service and uploader.
func NewCareerHandler(careerService service.CareerService, uploads *Uploader) *CareerHandler {
	return &CareerHandler{careerService: careerService, uploads: uploads}
}

// Submit handles POST /api/career. All five text fields plus the CV file are
// required. The CV is written to storage first; if the database insert fails
// the fresh file is removed so no orphan is left behind.
func (h *CareerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	fields := map[string]string{}
	for _, key := range []string{"name", "email", "phone", "position", "message"} {
		fields[key] = r.PostFormValue(key)
		if fields[key] == "" {
			respondError(w, http.StatusBadRequest, key+"_required")
			return
		}
	}

	cv, err := h.uploads.FromRequest(r, "cv")
	if errors.Is(err, ErrNoFile) {
		respondError(w, http.StatusBadRequest, "cv_required")
		return
	}
	if err != nil {
		slog.Error("cv upload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	a := &model.CareerApplication{
		Name:     fields["name"],
		Email:    fields["email"],
		Phone:    fields["phone"],
		Position: fields["position"],
		Message:  fields["message"],
		CV:       cv,
	}
	if err := h.careerService.Submit(r.Context(), a); err != nil {
		_ = h.uploads.Remove(r.Context(), cv)
		slog.Error("career submit failed", "error", err)
		respondError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Application submitted successfully!"})
}

// UpdateStatus handles POST /dashboard/careers/update/{id} (admin). Only
// Pending, Reviewed, and Hired are accepted.
func (h *CareerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	a, err := h.careerService.UpdateStatus(r.Context(), id, fields["status"])
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid_status")
		return
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		slog.Error("career status update failed", "error", err, "application_id", id)
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondOrRedirect(w, r, http.StatusOK, map[string]string{
		"message": "Status updated successfully",
		"status":  a.Status,
	})
}
