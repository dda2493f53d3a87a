package usecase

import (
	"context"
	"errors"

	"postify/internal/pkg/config"
	"postify/internal/pkg/jwt"
	"postify/internal/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const adminSubject = "admin"

type AuthUseCase interface {
	Login(ctx context.Context, email, pass string) (string, error)
}

type authUseCaseImpl struct {
	admin config.AdminConfig
	jwt   *jwt.Service
}

func NewAuthUseCase(admin config.AdminConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{admin: admin, jwt: jwtService}
}

// Login checks the credentials against the configured management principal
// and issues a bearer token.
func (a *authUseCaseImpl) Login(_ context.Context, email, pass string) (string, error) {
	if email != a.admin.Email {
		return "", ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.admin.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(adminSubject)
	if err != nil {
		return "", err
	}
	return token, nil
}
