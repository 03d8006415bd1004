package repository

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// ProjectRepository handles persistence for portfolio projects.
type ProjectRepository interface {
	Save(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	// List returns projects newest first, optionally filtered by exact
	// category match. An empty category returns all projects.
	List(ctx context.Context, category string) ([]*model.Project, error)
	// Categories returns the distinct non-empty categories across all projects.
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}
