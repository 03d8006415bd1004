package service

import (
	"context"

	"github.com/myagency/backend/internal/model"
)

// AuthService verifies admin credentials for the login flow.
type AuthService interface {
	// Login verifies username/password and returns the admin on success.
	// Failures of either kind surface as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*model.Admin, error)
}
