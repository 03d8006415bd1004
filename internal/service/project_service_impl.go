package service

import (
	"context"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
)

type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	return s.repo.Save(ctx, p)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) List(ctx context.Context, category string) ([]*model.Project, error) {
	return s.repo.List(ctx, category)
}

func (s *projectServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	return s.repo.Update(ctx, p)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
