package handler

import (
	"log/slog"
	"net/http"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/service"
	"github.com/myagency/backend/pkg/auth"
)

// DashboardHandler aggregates the admin dashboard listing: contacts,
// projects, distinct categories, and career applications. The dashboard
// template is an external consumer of this JSON.
type DashboardHandler struct {
	contactService service.ContactService
	projectService service.ProjectService
	careerService  service.CareerService
}

// NewDashboardHandler creates a DashboardHandler over the three resource services.
func NewDashboardHandler(cs service.ContactService, ps service.ProjectService, crs service.CareerService) *DashboardHandler {
	return &DashboardHandler{contactService: cs, projectService: ps, careerService: crs}
}

type dashboardResponse struct {
	User             map[string]string          `json:"user"`
	Contacts         []*model.Contact           `json:"contacts"`
	Projects         []*model.Project           `json:"projects"`
	Categories       []string                   `json:"categories"`
	CareerApps       []*model.CareerApplication `json:"careerApps"`
	SelectedCategory string                     `json:"selectedCategory,omitempty"`
}

// Dashboard handles GET /dashboard (admin).
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "")
}

// ByCategory handles GET /dashboard/category/{category} (admin), showing the
// dashboard with projects narrowed to one category.
func (h *DashboardHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, r.PathValue("category"))
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, category string) {
	ctx := r.Context()
	sess, _ := auth.AdminFromContext(ctx)

	contacts, err := h.contactService.List(ctx)
	if err != nil {
		slog.Error("dashboard contacts load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	projects, err := h.projectService.List(ctx, category)
	if err != nil {
		slog.Error("dashboard projects load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	categories, err := h.projectService.Categories(ctx)
	if err != nil {
		slog.Error("dashboard categories load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	careerApps, err := h.careerService.List(ctx)
	if err != nil {
		slog.Error("dashboard applications load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	if categories == nil {
		categories = []string{}
	}
	if careerApps == nil {
		careerApps = []*model.CareerApplication{}
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		User:             map[string]string{"id": sess.AdminID, "name": sess.Name},
		Contacts:         contacts,
		Projects:         projects,
		Categories:       categories,
		CareerApps:       careerApps,
		SelectedCategory: category,
	})
}
