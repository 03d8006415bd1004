package service

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
// Image file lifecycle is handled by the HTTP layer; this service only
// persists the stored filename carried on the model.
type ProjectService interface {
	// Create persists a new project. ID and timestamps are populated by the
	// implementation.
	Create(ctx context.Context, p *model.Project) error

	GetByID(ctx context.Context, id string) (*model.Project, error)

	// List returns projects newest first, optionally filtered by category.
	List(ctx context.Context, category string) ([]*model.Project, error)

	// Categories returns the distinct non-empty categories for the filter UI.
	Categories(ctx context.Context) ([]string, error)

	// Update persists all fields of p, which must carry a valid ID.
	Update(ctx context.Context, p *model.Project) error

	Delete(ctx context.Context, id string) error
}
