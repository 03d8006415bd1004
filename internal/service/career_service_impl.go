package service

import (
	"context"
	"time"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
)

type careerServiceImpl struct {
	repo repository.CareerRepository
}

// NewCareerService creates a CareerService backed by the given repository.
func NewCareerService(repo repository.CareerRepository) CareerService {
	return &careerServiceImpl{repo: repo}
}

// Submit stores a new application. It forces status to Pending and stamps
// timestamps before persisting.
func (s *careerServiceImpl) Submit(ctx context.Context, a *model.CareerApplication) error {
	now := time.Now().UTC()
	a.Status = model.CareerStatusPending
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Save(ctx, a)
}

func (s *careerServiceImpl) List(ctx context.Context) ([]*model.CareerApplication, error) {
	return s.repo.List(ctx)
}

// UpdateStatus validates the target status before touching the store, so an
// invalid value leaves the stored status unchanged.
func (s *careerServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error) {
	if !model.ValidCareerStatus(status) {
		return nil, ErrInvalidStatus
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	return a, nil
}
