package service

import (
	"context"
	"errors"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	admins repository.AdminRepository
}

// NewAuthService creates an AuthService backed by the given admin repository.
func NewAuthService(admins repository.AdminRepository) AuthService {
	return &authServiceImpl{admins: admins}
}

// Login looks up the admin by username and compares the password against the
// stored bcrypt hash. The plaintext password is never stored or logged.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
