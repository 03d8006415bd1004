package service

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// CareerService defines the business logic for career applications.
// Applications are immutable after submission apart from their status.
type CareerService interface {
	// Submit stores a new application with default status Pending. ID and
	// timestamps are populated by the implementation.
	Submit(ctx context.Context, a *model.CareerApplication) error

	// List returns all applications, newest first.
	List(ctx context.Context) ([]*model.CareerApplication, error)

	// UpdateStatus transitions an application to an explicit target status,
	// returning ErrInvalidStatus for values outside Pending/Reviewed/Hired
	// without touching the store.
	UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error)
}
