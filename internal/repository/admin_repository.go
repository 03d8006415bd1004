package repository

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// AdminRepository handles persistence for admin accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	Create(ctx context.Context, admin *model.Admin) error
}
