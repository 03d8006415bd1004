package service

import (
	"context"
	"time"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
)

type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact. It forces status to Unread and stamps
// CreatedAt before persisting.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	c.Status = model.ContactStatusUnread
	c.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, c)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

// Update loads the contact, replaces only the non-empty fields of upd, and
// persists the merged record.
func (s *contactServiceImpl) Update(ctx context.Context, id string, upd model.ContactUpdate) (*model.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != "" {
		c.Name = upd.Name
	}
	if upd.Email != "" {
		c.Email = upd.Email
	}
	if upd.Phone != "" {
		c.Phone = upd.Phone
	}
	if upd.Service != "" {
		c.Service = upd.Service
	}
	if upd.Message != "" {
		c.Message = upd.Message
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToggleStatus flips Read to Unread and anything else (Unread, Resolved) to
// Read, matching the dashboard's read-marker button.
func (s *contactServiceImpl) ToggleStatus(ctx context.Context, id string) (*model.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == model.ContactStatusRead {
		c.Status = model.ContactStatusUnread
	} else {
		c.Status = model.ContactStatusRead
	}
	if err := s.repo.UpdateStatus(ctx, id, c.Status); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStatus validates the target status before touching the store, so an
// invalid value leaves the stored status unchanged.
func (s *contactServiceImpl) SetStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	if !model.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = status
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
