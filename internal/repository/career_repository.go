package repository

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// CareerRepository handles persistence for career applications.
// Applications are immutable after submission apart from their status.
type CareerRepository interface {
	Save(ctx context.Context, a *model.CareerApplication) error
	GetByID(ctx context.Context, id string) (*model.CareerApplication, error)
	// List returns all applications, newest first.
	List(ctx context.Context) ([]*model.CareerApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
