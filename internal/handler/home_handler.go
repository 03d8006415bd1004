package handler

import (
	"log/slog"
	"net/http"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/service"
	"github.com/myagency/backend/pkg/auth"
)

// HomeHandler serves the public landing and portfolio listings.
type HomeHandler struct {
	projectService service.ProjectService
	sessions       *auth.MemoryStore
}

// NewHomeHandler creates a HomeHandler with the given service and session store.
func NewHomeHandler(projectService service.ProjectService, sessions *auth.MemoryStore) *HomeHandler {
	return &HomeHandler{projectService: projectService, sessions: sessions}
}

type homeResponse struct {
	User     map[string]string `json:"user"`
	Projects []*model.Project  `json:"projects"`
}

// Home handles GET /. Projects are listed newest first; user is null for
// anonymous visitors so the page can show login state.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	resp := homeResponse{}
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if sess, ok := h.sessions.Get(cookie.Value); ok {
			resp.User = map[string]string{"id": sess.AdminID, "name": sess.Name}
		}
	}

	projects, err := h.projectService.List(r.Context(), "")
	if err != nil {
		// The landing page degrades to an empty listing rather than erroring.
		slog.Error("home projects load failed", "error", err)
		projects = []*model.Project{}
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	resp.Projects = projects

	respondJSON(w, http.StatusOK, resp)
}

// Portfolio handles GET /portfolio, the public project listing.
func (h *HomeHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context(), "")
	if err != nil {
		slog.Error("portfolio projects load failed", "error", err)
		projects = []*model.Project{}
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
