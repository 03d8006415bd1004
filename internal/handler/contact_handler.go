package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
	"github.com/myagency/backend/internal/service"
)

// ContactHandler handles the public contact form and admin-side contact management.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact. All five fields are required.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	for _, key := range []string{"name", "email", "phone", "service", "message"} {
		if fields[key] == "" {
			respondError(w, http.StatusBadRequest, key+"_required")
			return
		}
	}

	c := &model.Contact{
		Name:    fields["name"],
		Email:   fields["email"],
		Phone:   fields["phone"],
		Service: fields["service"],
		Message: fields["message"],
	}
	if err := h.contactService.Submit(r.Context(), c); err != nil {
		slog.Error("contact submit failed", "error", err)
		respondError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Form submitted successfully!"})
}

// Update handles PUT /contacts/{id} (admin). Missing fields keep their
// stored values.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	c, err := h.contactService.Update(r.Context(), id, model.ContactUpdate{
		Name:    fields["name"],
		Email:   fields["email"],
		Phone:   fields["phone"],
		Service: fields["service"],
		Message: fields["message"],
	})
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("contact update failed", "error", err, "contact_id", id)
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondOrRedirect(w, r, http.StatusOK, c)
}

// UpdateStatus handles PUT /contacts/{id}/status (admin). Without a status in
// the body it toggles Read/Unread; with one it performs a validated explicit
// set, which is the only way to reach Resolved.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	fields, err := parseFields(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	var c *model.Contact
	if status := fields["status"]; status != "" {
		c, err = h.contactService.SetStatus(r.Context(), id, status)
	} else {
		c, err = h.contactService.ToggleStatus(r.Context(), id)
	}
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid_status")
		return
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		slog.Error("contact status update failed", "error", err, "contact_id", id)
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	respondOrRedirect(w, r, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Status set to %s", c.Status),
		"status":  c.Status,
	})
}

// Delete handles DELETE /contacts/{id} (admin).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.contactService.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("contact delete failed", "error", err, "contact_id", id)
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}

	respondOrRedirect(w, r, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
