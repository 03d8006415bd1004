package service

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions and
// their admin-side management.
type ContactService interface {
	// Submit stores a new contact with default status Unread. ID and
	// CreatedAt are populated by the implementation.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns all contacts, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	GetByID(ctx context.Context, id string) (*model.Contact, error)

	// Update replaces the supplied fields, keeping stored values for fields
	// left empty, and returns the updated contact.
	Update(ctx context.Context, id string, upd model.ContactUpdate) (*model.Contact, error)

	// ToggleStatus flips Read to Unread and any other status to Read.
	// Resolved can only be reached via SetStatus.
	ToggleStatus(ctx context.Context, id string) (*model.Contact, error)

	// SetStatus sets an explicit status from the enumerated set, returning
	// ErrInvalidStatus for anything else.
	SetStatus(ctx context.Context, id, status string) (*model.Contact, error)

	Delete(ctx context.Context, id string) error
}
