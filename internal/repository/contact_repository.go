package repository

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// ContactRepository handles persistence for contact form submissions.
type ContactRepository interface {
	Save(ctx context.Context, c *model.Contact) error
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	// List returns all contacts, newest first.
	List(ctx context.Context) ([]*model.Contact, error)
	Update(ctx context.Context, c *model.Contact) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
